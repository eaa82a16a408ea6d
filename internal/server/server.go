package server

import (
	"errors"
	"net/http"

	"lingolist/internal/domain"
	"lingolist/internal/middleware"
	"lingolist/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server exposes the list, capture and sharing services over HTTP.
type Server struct {
	lists       *service.ListService
	inserts     *service.InsertService
	shares      *service.ShareService
	captures    *service.CaptureService
	flashcards  *service.FlashcardService
	translation *service.TranslationService
	logger      *zap.Logger
}

// New creates a new HTTP server
func New(
	lists *service.ListService,
	inserts *service.InsertService,
	shares *service.ShareService,
	captures *service.CaptureService,
	flashcards *service.FlashcardService,
	translation *service.TranslationService,
	logger *zap.Logger,
) *Server {
	return &Server{
		lists:       lists,
		inserts:     inserts,
		shares:      shares,
		captures:    captures,
		flashcards:  flashcards,
		translation: translation,
		logger:      logger,
	}
}

// RegisterRoutes wires all handlers onto the echo instance
func (s *Server) RegisterRoutes(e *echo.Echo) {
	// Shared lists are readable by anyone holding the token.
	e.GET("/shared/:code", s.getSharedList)

	api := e.Group("", middleware.OwnerAuth(s.logger))
	api.POST("/lists", s.createList)
	api.GET("/lists", s.getLists)
	api.PUT("/lists/:listId", s.renameList)
	api.DELETE("/lists/:listId", s.deleteList)
	api.GET("/lists/:listId/items", s.getListItems)
	api.DELETE("/lists/:listId/items/:wordId", s.removeItem)
	api.PUT("/lists/:listId/cover", s.setCoverImage)
	api.POST("/items", s.addItem)
	api.POST("/shares", s.createShare)
	api.POST("/imports", s.importSharedList)
	api.POST("/captures", s.createCapture)
	api.GET("/captures", s.getCaptures)
	api.GET("/captures/:captureId", s.getCapture)
	api.DELETE("/captures/:captureId", s.deleteCapture)
	api.POST("/flashcards", s.createFlashcard)
	api.GET("/flashcards", s.getFlashcards)
	api.DELETE("/flashcards/:fcId", s.deleteFlashcard)
	api.POST("/translations", s.translate)
}

// writeErr maps domain error kinds onto HTTP statuses
func (s *Server) writeErr(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrExternalFailure):
		status = http.StatusBadGateway
	default:
		s.logger.Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		return c.JSON(status, map[string]string{"error": "internal error"})
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
