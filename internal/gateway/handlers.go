package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/provider"
	"github.com/pkg/errors"
)

type listResponse struct {
	Data  []backend.Record `json:"data"`
	Total int              `json:"total"`
}

type recordResponse struct {
	Data backend.Record `json:"data"`
}

type idsResponse struct {
	IDs []string `json:"ids"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getList(c echo.Context) error {

	resource := c.Param("resource")
	ctx := c.Request().Context()

	if ids := queryIDs(c); len(ids) > 0 {
		result, err := s.provider.GetMany(ctx, resource, provider.GetManyParams{IDs: ids})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, listResponse{Data: result.Data, Total: len(result.Data)})
	}

	if target := c.QueryParam("target"); target != "" {
		result, err := s.provider.GetManyReference(ctx, resource, provider.GetManyReferenceParams{
			Target:     target,
			ID:         c.QueryParam("target_id"),
			Pagination: queryPagination(c),
			Sort:       querySorting(c),
			Filter:     queryFilter(c),
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, listResponse{Data: result.Data, Total: result.Total})
	}

	result, err := s.provider.GetList(ctx, resource, provider.GetListParams{
		Pagination: queryPagination(c),
		Sort:       querySorting(c),
		Filter:     queryFilter(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, listResponse{Data: result.Data, Total: result.Total})
}

func (s *Server) getOne(c echo.Context) error {
	result, err := s.provider.GetOne(c.Request().Context(), c.Param("resource"),
		provider.GetOneParams{ID: c.Param("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, recordResponse{Data: result.Data})
}

func (s *Server) create(c echo.Context) error {
	var data backend.Record
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	result, err := s.provider.Create(c.Request().Context(), c.Param("resource"),
		provider.CreateParams{Data: data})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, recordResponse{Data: result.Data})
}

type updateRequest struct {
	Data         backend.Record `json:"data"`
	PreviousData backend.Record `json:"previousData"`
}

func (s *Server) update(c echo.Context) error {
	var body updateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	result, err := s.provider.Update(c.Request().Context(), c.Param("resource"), provider.UpdateParams{
		ID:           c.Param("id"),
		Data:         body.Data,
		PreviousData: body.PreviousData,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, recordResponse{Data: result.Data})
}

type updateManyRequest struct {
	IDs  []string       `json:"ids"`
	Data backend.Record `json:"data"`
}

func (s *Server) updateMany(c echo.Context) error {
	var body updateManyRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	result, err := s.provider.UpdateMany(c.Request().Context(), c.Param("resource"),
		provider.UpdateManyParams{IDs: body.IDs, Data: body.Data})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, idsResponse{IDs: result.IDs})
}

func (s *Server) delete(c echo.Context) error {
	var previous backend.Record
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&previous); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
	}
	result, err := s.provider.Delete(c.Request().Context(), c.Param("resource"), provider.DeleteParams{
		ID:           c.Param("id"),
		PreviousData: previous,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, recordResponse{Data: result.Data})
}

func (s *Server) deleteMany(c echo.Context) error {
	result, err := s.provider.DeleteMany(c.Request().Context(), c.Param("resource"),
		provider.DeleteManyParams{IDs: queryIDs(c)})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, idsResponse{IDs: result.IDs})
}

func (s *Server) approve(c echo.Context) error {
	if err := s.provider.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reject(c echo.Context) error {
	if err := s.provider.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type loginGatewayRequest struct {
	Credential string `json:"credential"`
}

func (s *Server) login(c echo.Context) error {
	var body loginGatewayRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	token, err := s.authClient.Login(c.Request().Context(), body.Credential)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	}
	s.tokens.SetToken(token)
	return c.NoContent(http.StatusNoContent)
}

func queryPagination(c echo.Context) provider.Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	return provider.Pagination{Page: page, PerPage: perPage}
}

func querySorting(c echo.Context) provider.Sorting {
	return provider.Sorting{Field: c.QueryParam("sort"), Order: c.QueryParam("order")}
}

func queryFilter(c echo.Context) provider.Filter {
	raw := c.QueryParam("filter")
	if raw == "" {
		return nil
	}
	var filter provider.Filter
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil
	}
	return filter
}

func queryIDs(c echo.Context) []string {
	raw := c.QueryParam("ids")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, provider.ErrMissingID),
		errors.Is(err, provider.ErrCompanyIDRequired),
		errors.Is(err, provider.ErrAdvertisementIDRequired):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, provider.ErrUnsupportedResource):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, provider.ErrCompanyUnknown),
		errors.Is(err, provider.ErrMissingAncestry):
		return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
}
