package server

import (
	"encoding/base64"
	"net/http"

	"lingolist/internal/middleware"

	"github.com/labstack/echo/v4"
)

type createListRequest struct {
	ListName       string `json:"listName"`
	CoverImage     string `json:"coverImage,omitempty"` // base64
	CoverImageType string `json:"coverImageType,omitempty"`
}

func (s *Server) createList(c echo.Context) error {
	var req createListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	var cover []byte
	if req.CoverImage != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.CoverImage)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cover image encoding"})
		}
		cover = decoded
	}

	list, err := s.lists.Create(c.Request().Context(), middleware.OwnerID(c), req.ListName, cover, req.CoverImageType)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, list)
}

func (s *Server) getLists(c echo.Context) error {
	lists, err := s.lists.List(middleware.OwnerID(c))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"lists": lists})
}

type renameListRequest struct {
	ListName string `json:"listName"`
}

func (s *Server) renameList(c echo.Context) error {
	var req renameListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := s.lists.Rename(middleware.OwnerID(c), c.Param("listId"), req.ListName); err != nil {
		return s.writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteList(c echo.Context) error {
	if err := s.lists.Delete(c.Request().Context(), middleware.OwnerID(c), c.Param("listId")); err != nil {
		return s.writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getListItems(c echo.Context) error {
	items, err := s.lists.Items(middleware.OwnerID(c), c.Param("listId"))
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) removeItem(c echo.Context) error {
	if err := s.lists.RemoveItem(middleware.OwnerID(c), c.Param("listId"), c.Param("wordId")); err != nil {
		return s.writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type setCoverRequest struct {
	CoverImage     string `json:"coverImage"` // base64
	CoverImageType string `json:"coverImageType"`
}

func (s *Server) setCoverImage(c echo.Context) error {
	var req setCoverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	cover, err := base64.StdEncoding.DecodeString(req.CoverImage)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid cover image encoding"})
	}

	list, err := s.lists.SetCoverImage(c.Request().Context(), middleware.OwnerID(c), c.Param("listId"), cover, req.CoverImageType)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type addItemRequest struct {
	WordID        string   `json:"wordId"`
	CaptureID     string   `json:"captureId"`
	TargetListIDs []string `json:"targetListIds"`
}

func (s *Server) addItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := s.inserts.AddItem(middleware.OwnerID(c), req.WordID, req.CaptureID, req.TargetListIDs)
	if err != nil {
		return s.writeErr(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
