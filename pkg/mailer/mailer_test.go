package mailer

import (
	"bufio"
	"context"
	"encoding/base64"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactNotConfigured(t *testing.T) {
	cases := []Config{
		{},
		{Host: "smtp.example.com", User: "owner@example.com"},
		{Host: "smtp.example.com", Pass: "secret"},
		{User: "owner@example.com", Pass: "secret"},
	}
	for _, cfg := range cases {
		s := NewSender(cfg)
		assert.False(t, s.Configured())
		assert.ErrorIs(t, s.SendContact(context.Background(), "a@b.co", "hi"), ErrNotConfigured)
	}
}

func TestNewSenderDefaults(t *testing.T) {
	s := NewSender(Config{Host: "smtp.example.com", User: "owner@example.com", Pass: "secret"})
	assert.True(t, s.Configured())
	assert.Equal(t, 587, s.cfg.Port)
	assert.Equal(t, "owner@example.com", s.cfg.From)
	assert.Equal(t, "owner@example.com", s.cfg.To)
}

func TestMessageContent(t *testing.T) {
	assert.Equal(t, "New contact message from a@b.co", Subject("a@b.co"))
	assert.Equal(t, "From: a@b.co\n\nhello there", Body("a@b.co", "hello there"))

	s := NewSender(Config{Host: "smtp.example.com", User: "owner@example.com", Pass: "secret"})
	msg, err := s.buildMessage("a@b.co", "hello there")
	assert.NoError(t, err)
	assert.NotNil(t, msg)

	_, err = s.buildMessage("not an address", "hello there")
	assert.Error(t, err)
}

// fakeRelay is a minimal ESMTP server without STARTTLS that accepts any login.
type fakeRelay struct {
	ln   net.Listener
	mu   sync.Mutex
	auth string
	data string
}

// startFakeRelay listens on a non-localhost loopback address so the client
// treats the connection as remote.
func startFakeRelay(t *testing.T) *fakeRelay {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.2:0")
	if err != nil {
		t.Skipf("loopback address 127.0.0.2 unavailable: %v", err)
	}
	r := &fakeRelay{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go r.handle(conn)
		}
	}()
	return r
}

func (r *fakeRelay) handle(conn net.Conn) {
	defer conn.Close()
	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	reply := func(lines ...string) {
		for _, l := range lines {
			_, _ = rw.WriteString(l + "\r\n")
		}
		_ = rw.Flush()
	}

	reply("220 relay.test ESMTP")
	for {
		line, err := rw.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		cmd := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			reply("250-relay.test", "250-AUTH PLAIN LOGIN", "250 8BITMIME")
		case strings.HasPrefix(cmd, "AUTH"):
			r.mu.Lock()
			r.auth = line
			r.mu.Unlock()
			reply("235 2.7.0 Authentication successful")
		case cmd == "DATA":
			reply("354 End data with <CR><LF>.<CR><LF>")
			var b strings.Builder
			for {
				l, err := rw.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				b.WriteString(l)
			}
			r.mu.Lock()
			r.data = b.String()
			r.mu.Unlock()
			reply("250 2.0.0 queued")
		case cmd == "QUIT":
			reply("221 2.0.0 bye")
			return
		default:
			reply("250 2.0.0 ok")
		}
	}
}

func TestSendContactWithoutTLS(t *testing.T) {
	relay := startFakeRelay(t)
	addr := relay.ln.Addr().(*net.TCPAddr)

	s := NewSender(Config{
		Host:   addr.IP.String(),
		Port:   addr.Port,
		User:   "owner@example.com",
		Pass:   "secret",
		UseTLS: false,
	})
	require.NoError(t, s.SendContact(context.Background(), "a@b.co", "hello there"))

	relay.mu.Lock()
	defer relay.mu.Unlock()

	fields := strings.Fields(relay.auth)
	require.Len(t, fields, 3)
	assert.Equal(t, "PLAIN", strings.ToUpper(fields[1]))
	creds, err := base64.StdEncoding.DecodeString(fields[2])
	require.NoError(t, err)
	assert.Equal(t, "\x00owner@example.com\x00secret", string(creds))

	assert.Contains(t, relay.data, "Subject: New contact message from a@b.co")
	assert.Contains(t, relay.data, "a@b.co")
	assert.Contains(t, relay.data, "hello there")
}
