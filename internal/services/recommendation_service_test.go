package services_test

import (
	"context"
	"errors"
	"testing"

	"paletteandfit/internal/models"
	"paletteandfit/internal/services"
	"paletteandfit/pkg/stylist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const stylistReply = "Best color: Navy Blue\nWorst color: Yellow\nLight tones: 60\nWestern style: 70\nPersonalized tip: Go for a navy kurta."

func TestBuildPrompt(t *testing.T) {
	user := &models.User{
		Name:     strPtr("Ayesha"),
		Age:      intPtr(27),
		Gender:   strPtr("female"),
		SkinTone: strPtr("wheatish"),
		Weight:   floatPtr(58.5),
	}
	prompt := services.BuildPrompt(user, "What should I wear to a mehndi?")

	assert.Contains(t, prompt, "User profile:\n- Name: Ayesha\n- Age: 27\n- Gender: female\n- Skin tone: wheatish\n- Weight: 58.5 kg\n")
	assert.Contains(t, prompt, "- Body length: unknown in\n")
	assert.Contains(t, prompt, "The user asks: What should I wear to a mehndi?\n")
	assert.Contains(t, prompt, "Pakistani audience")

	noProfile := services.BuildPrompt(nil, "Colors for winter?")
	assert.Contains(t, noProfile, "No user profile found.\n\nThe user asks: Colors for winter?")
}

func TestRecommendationService_Recommend(t *testing.T) {
	users := new(MockUserRepository)
	logs := new(MockChatLogRepository)
	publisher := new(MockPublisher)
	ai := &stylist.StaticClient{Reply: stylistReply}
	service := services.NewRecommendationService(users, logs, ai, publisher)

	user := &models.User{Username: "a@b.co", Name: strPtr("Ali")}
	users.On("GetByUsername", "a@b.co").Return(user, nil).Once()
	logs.On("Create", mock.MatchedBy(func(l *models.ChatbotLog) bool {
		return l.UserEmail == "a@b.co" && l.Question == "eid outfit?" && l.BotResponse == stylistReply
	})).Return(nil).Once()
	users.On("SaveRecommendation", "a@b.co", stylistReply, mock.MatchedBy(func(a models.StyleAnalysis) bool {
		return *a.BestColor == "Navy Blue" && *a.WesternPercent == 70 && a.EasternPercent == nil &&
			*a.PersonalizedAnalysis == "Go for a navy kurta."
	})).Return(nil).Once()
	publisher.On("Publish", services.EventRecommendationGenerated, mock.Anything).Return(nil).Once()

	reply, err := service.Recommend(context.Background(), "a@b.co", "eid outfit?")
	require.NoError(t, err)
	assert.Equal(t, stylistReply, reply)
	require.Len(t, ai.Prompts, 1)
	assert.Contains(t, ai.Prompts[0], "- Name: Ali")

	users.AssertExpectations(t)
	logs.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRecommendationService_BestEffortSteps(t *testing.T) {
	users := new(MockUserRepository)
	logs := new(MockChatLogRepository)
	publisher := new(MockPublisher)
	ai := &stylist.StaticClient{Reply: "Wear what makes you happy."}
	service := services.NewRecommendationService(users, logs, ai, publisher)

	storeDown := errors.New("store unavailable")
	users.On("GetByUsername", "a@b.co").Return(nil, storeDown).Once()
	logs.On("Create", mock.Anything).Return(storeDown).Once()
	users.On("SaveRecommendation", "a@b.co", "Wear what makes you happy.", mock.Anything).Return(storeDown).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	reply, err := service.Recommend(context.Background(), "a@b.co", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Wear what makes you happy.", reply)
	assert.Contains(t, ai.Prompts[0], "No user profile found.")
}

func TestRecommendationService_GenerationFailure(t *testing.T) {
	users := new(MockUserRepository)
	logs := new(MockChatLogRepository)
	ai := &stylist.StaticClient{Err: errors.New("quota exceeded")}
	service := services.NewRecommendationService(users, logs, ai, nil)

	users.On("GetByUsername", "a@b.co").Return(&models.User{Username: "a@b.co"}, nil).Once()

	_, err := service.Recommend(context.Background(), "a@b.co", "anything")
	var genErr *services.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "AI error: quota exceeded", err.Error())

	logs.AssertNotCalled(t, "Create", mock.Anything)
	users.AssertNotCalled(t, "SaveRecommendation", mock.Anything, mock.Anything, mock.Anything)
}
