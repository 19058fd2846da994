package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Igormartins234/backend-ia-historia/application/ports/inbound"
	"github.com/Igormartins234/backend-ia-historia/application/ports/outbound"
	"github.com/Igormartins234/backend-ia-historia/domain"
	"github.com/Igormartins234/backend-ia-historia/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StoryController interface {
	CreateStory(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger     outbound.LoggerPort
	storyMaker inbound.StoryMakerPort
}

func NewStoryController(logger outbound.LoggerPort, storyMaker inbound.StoryMakerPort) StoryController {
	return &storyController{
		logger:     logger,
		storyMaker: storyMaker,
	}
}

func (s *storyController) CreateStory(c *gin.Context) {
	var createStoryRequest dto.CreateStoryRequest
	if err := c.ShouldBindJSON(&createStoryRequest); err != nil {
		s.abortBadRequest(c, domain.NewStoryError(domain.ErrorKindInvalidRequestShape,
			"invalid JSON request, expected an object"))
		return
	}

	details, shapeErr := parseDetails(createStoryRequest.Detalhes)
	if shapeErr != nil {
		s.abortBadRequest(c, shapeErr)
		return
	}

	if len(details) < 2 {
		s.abortBadRequest(c, domain.NewStoryError(domain.ErrorKindMissingFields,
			"a suggested title and the story prompt are required"))
		return
	}

	requestID := uuid.NewString()

	story, err := s.storyMaker.MakeStory(c.Request.Context(), inbound.MakeStoryParams{
		Details:   details,
		RequestID: requestID,
	})
	if err != nil {
		var storyErr *domain.StoryError
		if errors.As(err, &storyErr) {
			s.logger.ErrorWithFields(err, "Story generation failed", map[string]interface{}{
				"request_id": requestID,
				"kind":       storyErr.Kind,
			})
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: storyErr.Error()})
			return
		}

		s.logger.ErrorWithFields(err, "Unclassified failure during story generation", map[string]interface{}{
			"request_id": requestID,
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: fmt.Sprintf("internal server error: %s", err),
		})
		return
	}

	c.JSON(http.StatusOK, story)
}

func (s *storyController) abortBadRequest(c *gin.Context, err *domain.StoryError) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

// parseDetails applies the "detalhes" validation sequence: an absent field
// defaults to an empty list, anything that is not a list of strings is a
// request-shape error.
func parseDetails(rawDetails json.RawMessage) ([]string, *domain.StoryError) {
	if len(rawDetails) == 0 {
		return []string{}, nil
	}

	if bytes.Equal(bytes.TrimSpace(rawDetails), []byte("null")) {
		return nil, domain.NewStoryError(domain.ErrorKindInvalidRequestShape, "'detalhes' field must be a list")
	}

	var details []string
	if err := json.Unmarshal(rawDetails, &details); err != nil {
		return nil, domain.NewStoryError(domain.ErrorKindInvalidRequestShape, "'detalhes' field must be a list")
	}

	return details, nil
}

func (s *storyController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/historia", s.CreateStory)
	g.GET("/health", s.Health)
}
