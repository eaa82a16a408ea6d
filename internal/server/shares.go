package server

import (
	"net/http"

	"lingolist/internal/middleware"

	"github.com/labstack/echo/v4"
)

type createShareRequest struct {
	ListID string `json:"listId"`
}

func (s *Server) createShare(c echo.Context) error {
	var req createShareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	code, err := s.shares.Issue(middleware.OwnerID(c), req.ListID)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, code)
}

func (s *Server) getSharedList(c echo.Context) error {
	shared, err := s.shares.Resolve(c.Param("code"))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, shared)
}

type importRequest struct {
	SharedCode string `json:"sharedCode"`
}

func (s *Server) importSharedList(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := s.shares.Import(middleware.OwnerID(c), req.SharedCode)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}
