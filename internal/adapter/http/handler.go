package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"chunkatlas/internal/app/classify"
	"chunkatlas/internal/app/export"
	"chunkatlas/internal/app/ports"
	"chunkatlas/internal/app/renderplan"
	"chunkatlas/internal/app/survey"
	"chunkatlas/internal/app/tiles"
	"chunkatlas/internal/domain/atlas"
	"chunkatlas/internal/domain/grid"
	"chunkatlas/internal/schema"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SurveyUC   survey.UseCase
	ClassifyUC classify.UseCase
	GetRunUC   classify.GetUseCase
	PlanUC     renderplan.UseCase
	TilesUC    tiles.UseCase
	ExportUC   export.UseCase
	// SurveySchema validates survey payloads before decoding; nil skips
	// validation.
	SurveySchema *schema.Validator
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.PUT("/surfaces/:name", h.putSurvey)
	api.POST("/surfaces/:name/classify", h.classify)
	api.POST("/surfaces/:name/chunks/:x/:y/image", h.uploadChunkImage)
	api.GET("/runs/:id", h.getRun)
	api.GET("/runs/:id/render-plan", h.renderPlan)
	api.POST("/export", h.export)
}

type surveyBody struct {
	Chunks []survey.ChunkEntry    `json:"chunks"`
	Tags   map[string][]atlas.Tag `json:"tags,omitempty"`
}

type classifyBody struct {
	Horizon *int `json:"horizon,omitempty"`
}

type exportBody struct {
	Surfaces []string `json:"surfaces,omitempty"`
}

func (h Handler) putSurvey(c context.Context, ctx *app.RequestContext) {
	name := string(ctx.Param("name"))
	if h.SurveySchema != nil {
		if err := h.SurveySchema.ValidateBytes(ctx.Request.Body()); err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_survey", err.Error())
			return
		}
	}

	var body surveyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SurveyUC.Execute(c, survey.Request{
		Surface: name,
		Chunks:  body.Chunks,
		Tags:    body.Tags,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) classify(c context.Context, ctx *app.RequestContext) {
	var body classifyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ClassifyUC.Execute(c, classify.Request{
		Surface: string(ctx.Param("name")),
		Horizon: body.Horizon,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getRun(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GetRunUC.Execute(c, classify.GetRequest{RunID: string(ctx.Param("id"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) renderPlan(c context.Context, ctx *app.RequestContext) {
	resp, err := h.PlanUC.Execute(c, renderplan.Request{RunID: string(ctx.Param("id"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) uploadChunkImage(c context.Context, ctx *app.RequestContext) {
	x, errX := strconv.Atoi(string(ctx.Param("x")))
	y, errY := strconv.Atoi(string(ctx.Param("y")))
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_coordinate", "chunk coordinates must be integers")
		return
	}

	body := ctx.Request.Body()
	image := make([]byte, len(body))
	copy(image, body)

	resp, err := h.TilesUC.Execute(c, tiles.Request{
		Surface:     string(ctx.Param("name")),
		X:           x,
		Y:           y,
		ContentType: strings.TrimSpace(string(ctx.ContentType())),
		Image:       image,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) export(c context.Context, ctx *app.RequestContext) {
	var body exportBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ExportUC.Execute(c, export.Request{Surfaces: body.Surfaces})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, grid.ErrNegativeHorizon):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_horizon", err.Error())
	case errors.Is(err, survey.ErrInvalidRequest),
		errors.Is(err, classify.ErrInvalidRequest),
		errors.Is(err, renderplan.ErrInvalidRequest),
		errors.Is(err, tiles.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, export.ErrNothingToExport):
		writeErrorBody(ctx, consts.StatusConflict, "nothing_to_export", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
