package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"paletteandfit/internal/models"
	"paletteandfit/internal/repositories"
	"paletteandfit/pkg/stylist"

	"github.com/sirupsen/logrus"
)

const noProfileContext = "No user profile found."

// GenerationError wraps a failure of the generative service.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "AI error: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// RecommendationService turns a style question into a personalized stylist reply.
type RecommendationService struct {
	userRepo repositories.UserRepository
	chatLogs repositories.ChatLogRepository
	ai       stylist.Client
	events   EventPublisher
}

func NewRecommendationService(userRepo repositories.UserRepository, chatLogs repositories.ChatLogRepository, ai stylist.Client, events EventPublisher) *RecommendationService {
	return &RecommendationService{
		userRepo: userRepo,
		chatLogs: chatLogs,
		ai:       ai,
		events:   events,
	}
}

// Recommend asks the stylist and returns its raw reply. Only the generation
// call can fail; logging, extraction and persistence are best effort.
func (s *RecommendationService) Recommend(ctx context.Context, username, query string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user": username, "error": err}).Warn("Could not load profile for recommendation")
		user = nil
	}

	reply, err := s.ai.Generate(ctx, BuildPrompt(user, query))
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	if err := s.chatLogs.Create(&models.ChatbotLog{
		UserEmail:   username,
		Question:    query,
		BotResponse: reply,
	}); err != nil {
		logrus.WithFields(logrus.Fields{"user": username, "error": err}).Warn("Could not save chatbot log")
	}

	analysis := ExtractStyle(reply)
	if err := s.userRepo.SaveRecommendation(username, reply, analysis); err != nil {
		logrus.WithFields(logrus.Fields{"user": username, "error": err}).Warn("Could not save recommendation details")
	}

	publishEvent(s.events, EventRecommendationGenerated, map[string]interface{}{
		"user":     username,
		"analysis": analysis,
	})
	return reply, nil
}

// BuildPrompt renders the profile context and the user's question. A nil
// user produces the no-profile placeholder.
func BuildPrompt(user *models.User, query string) string {
	var b strings.Builder
	if user == nil {
		b.WriteString(noProfileContext)
	} else {
		b.WriteString("User profile:\n")
		fmt.Fprintf(&b, "- Name: %s\n", str(user.Name))
		fmt.Fprintf(&b, "- Age: %s\n", intStr(user.Age))
		fmt.Fprintf(&b, "- Gender: %s\n", str(user.Gender))
		fmt.Fprintf(&b, "- Skin tone: %s\n", str(user.SkinTone))
		fmt.Fprintf(&b, "- Weight: %s kg\n", floatStr(user.Weight))
		fmt.Fprintf(&b, "- Body length: %s in\n", floatStr(user.BodyLength))
		fmt.Fprintf(&b, "- Upper body width: %s in\n", floatStr(user.UpperWidth))
		fmt.Fprintf(&b, "- Lower body width: %s in\n", floatStr(user.LowerWidth))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The user asks: %s\n", query)
	b.WriteString("Give a detailed, friendly, practical fashion recommendation for a Pakistani audience using this user's info. ")
	b.WriteString("Suggest the best and worst colors, recommend percentage fit for lighter/darker tones and western/eastern styles, ")
	b.WriteString("and include a personalized analysis/tip for the user.")
	return b.String()
}

const unknownValue = "unknown"

func str(v *string) string {
	if v == nil || *v == "" {
		return unknownValue
	}
	return *v
}

func intStr(v *int) string {
	if v == nil {
		return unknownValue
	}
	return strconv.Itoa(*v)
}

func floatStr(v *float64) string {
	if v == nil {
		return unknownValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
