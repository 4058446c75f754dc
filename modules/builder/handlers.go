package builder

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailforge/handler"
	"github.com/dmitrymomot/mailforge/pkg/email"
	"github.com/dmitrymomot/mailforge/pkg/preview"
	"github.com/dmitrymomot/mailforge/pkg/sanitizer"
	"github.com/dmitrymomot/mailforge/pkg/validator"
)

func (s *Service) index(handler.Context, struct{}) handler.Response {
	return handler.Templ(s.builderPage(nil))
}

// generate answers DataStar requests with a patch of #output and plain form
// posts with the whole page.
func (s *Service) generate(ctx handler.Context, _ struct{}) handler.Response {
	r := ctx.Request()
	r.Body = http.MaxBytesReader(ctx.ResponseWriter(), r.Body, s.cfg.MaxBodyBytes)

	data, err := s.collector.Collect(ctx, r)
	if err != nil {
		s.metrics.failed(SourceForm)
		return handler.Error(err)
	}

	design := Design{
		ColorScheme: r.FormValue("color_scheme"),
		ButtonStyle: r.FormValue("button_style"),
	}.normalize()
	if err := design.validate(); err != nil {
		s.metrics.failed(SourceForm)
		return handler.Error(err)
	}

	doc, err := s.render(ctx, data, design, SourceForm)
	if err != nil {
		return handler.Error(err)
	}

	return handler.TemplPartial(
		s.result(&doc),
		s.builderPage(&doc),
		handler.WithTarget("#output"),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

func (s *Service) lookup(ctx handler.Context) (preview.Document, error) {
	doc, err := s.store.Get(ctx, chi.URLParam(ctx.Request(), "id"))
	if errors.Is(err, preview.ErrNotFound) || errors.Is(err, preview.ErrInvalidID) {
		return preview.Document{}, handler.ErrNotFound
	}
	return doc, err
}

func (s *Service) document(ctx handler.Context, _ struct{}) handler.Response {
	doc, err := s.lookup(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.HTML(http.StatusOK, doc.HTML)
}

func (s *Service) download(ctx handler.Context, _ struct{}) handler.Response {
	doc, err := s.lookup(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Attachment(doc.Filename, doc.HTML)
}

type renderResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	HTML     string `json:"html"`
	Size     int    `json:"size"`
}

func (s *Service) apiRender(ctx handler.Context, req renderRequest) handler.Response {
	design := req.Design.normalize()
	if err := req.Data.Validate(); err != nil {
		s.metrics.failed(SourceAPI)
		return handler.JSONError(err)
	}
	if err := design.validate(); err != nil {
		s.metrics.failed(SourceAPI)
		return handler.JSONError(err)
	}

	doc, err := s.render(ctx, req.Data, design, SourceAPI)
	if err != nil {
		return handler.Error(err)
	}

	return handler.JSON(renderResponse{
		ID:       doc.ID,
		Filename: doc.Filename,
		HTML:     doc.HTML,
		Size:     len(doc.HTML),
	}, handler.WithJSONStatus(http.StatusCreated))
}

type contrastResponse struct {
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}

func (s *Service) contrast(ctx handler.Context, _ struct{}) handler.Response {
	color := sanitizer.HexColor(ctx.Request().URL.Query().Get("color"))
	if err := validator.Apply(validator.Optional(color, validator.ValidHexColor("color", color))); err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(contrastResponse{Color: color, TextColor: email.ContrastTextColor(color)})
}

func (s *Service) mergeFields(handler.Context, struct{}) handler.Response {
	return handler.JSON(email.MergeFields())
}

type insertRequest struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value"`
}

type insertResponse struct {
	Text  string `json:"text"`
	Caret int    `json:"caret"`
}

func (s *Service) insertMergeField(_ handler.Context, req insertRequest) handler.Response {
	if err := validator.Apply(validator.RequiredString("value", req.Value)); err != nil {
		return handler.JSONError(err)
	}
	text, caret := email.InsertMergeField(req.Text, req.Start, req.End, req.Value)
	return handler.JSON(insertResponse{Text: text, Caret: caret})
}
