package server

import (
	"net/http"

	"lingolist/internal/middleware"

	"github.com/labstack/echo/v4"
)

type createFlashcardRequest struct {
	CaptureID   string `json:"captureId"`
	Description string `json:"description,omitempty"`
}

func (s *Server) createFlashcard(c echo.Context) error {
	var req createFlashcardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	card, err := s.flashcards.Create(middleware.OwnerID(c), req.CaptureID, req.Description)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (s *Server) getFlashcards(c echo.Context) error {
	cards, err := s.flashcards.List(middleware.OwnerID(c))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"flashcards": cards})
}

func (s *Server) deleteFlashcard(c echo.Context) error {
	if err := s.flashcards.Delete(middleware.OwnerID(c), c.Param("fcId")); err != nil {
		return s.writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
