package server

import (
	"net/http"

	"lingolist/internal/middleware"

	"github.com/labstack/echo/v4"
)

type createCaptureRequest struct {
	ObjectName     string   `json:"objectName"`
	TargetLang     string   `json:"targetLang"`
	Accuracy       *float64 `json:"accuracy,omitempty"`
	ImageMimeType  string   `json:"imageMimeType,omitempty"`
	ImageSizeBytes int64    `json:"imageSizeBytes,omitempty"`
}

func (s *Server) createCapture(c echo.Context) error {
	var req createCaptureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	capture, err := s.captures.Create(
		c.Request().Context(),
		middleware.OwnerID(c),
		req.ObjectName,
		req.TargetLang,
		req.Accuracy,
		req.ImageMimeType,
		req.ImageSizeBytes,
	)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, capture)
}

func (s *Server) getCaptures(c echo.Context) error {
	captures, err := s.captures.List(middleware.OwnerID(c))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"captures": captures})
}

func (s *Server) getCapture(c echo.Context) error {
	capture, err := s.captures.Get(middleware.OwnerID(c), c.Param("captureId"))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, capture)
}

func (s *Server) deleteCapture(c echo.Context) error {
	if err := s.captures.Delete(middleware.OwnerID(c), c.Param("captureId")); err != nil {
		return s.writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}

func (s *Server) translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	translation, err := s.translation.Translate(c.Request().Context(), req.Text, req.TargetLang)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, translation)
}
