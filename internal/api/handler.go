package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tavaresm/garimpo/internal/classify"
	"github.com/tavaresm/garimpo/internal/domain/dto"
	"github.com/tavaresm/garimpo/internal/search"
	"github.com/tavaresm/garimpo/internal/service"
)

// Handler provides HTTP handlers for the product search and image
// classification endpoints.
//
// Responsibilities:
//   - Validate incoming request bodies
//   - Interact with the service layer / classifier capability
//   - Translate engine errors into appropriate HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc        service.ProductService
	classifier classify.Classifier
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.ProductService, classifier classify.Classifier) *Handler {
	return &Handler{svc: svc, classifier: classifier}
}

// SearchProducts handles POST /buscar-produtos requests.
//
// Responses:
//   - 200 OK: combined catalog keyed by provider name, each value an array
//     of at most 5 products.
//   - 400 Bad Request: missing categoria.
//   - 429 Too Many Requests: daily search quota exhausted.
//   - 500 Internal Server Error: a load-bearing provider failed.
//
// SearchProducts godoc
// @Summary      Search products across providers
// @Description  Fans the filter out to all configured product-search providers and returns their combined results
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        filtro  body      dto.SearchRequest  true  "Search filter"
// @Success      200     {object}  map[string][]models.Product  "Success"
// @Failure      400     {object}  dto.ErrorResponse            "Bad Request"
// @Failure      429     {object}  dto.ErrorResponse            "Quota Exceeded"
// @Failure      500     {object}  dto.ErrorResponse            "Internal Error"
// @Router       /buscar-produtos [post]
func (h *Handler) SearchProducts(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("categoria is required", err))
		return
	}

	catalog, err := h.svc.Search(c.Request.Context(), req)
	switch {
	case errors.Is(err, search.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("categoria is required", err))
		return
	case errors.Is(err, search.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, dto.NewErrorResponse("daily search quota exceeded", nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch products", err))
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// ClassifyImage handles POST /classificar-imagem requests.
//
// Expects a multipart form with the image under the "imagem" field.
//
// Responses:
//   - 200 OK: predicted label and confidence.
//   - 400 Bad Request: missing or unreadable file.
//   - 502 Bad Gateway: inference call failed.
//   - 503 Service Unavailable: no inference endpoint configured.
//
// ClassifyImage godoc
// @Summary      Classify a product image
// @Description  Runs the uploaded image through the pretrained classification model
// @Tags         classify
// @Accept       multipart/form-data
// @Produce      json
// @Param        imagem  formData  file  true  "Image file"
// @Success      200     {object}  dto.LabelResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse  "Inference Failure"
// @Failure      503     {object}  dto.ErrorResponse  "Not Configured"
// @Router       /classificar-imagem [post]
func (h *Handler) ClassifyImage(c *gin.Context) {
	if h.classifier == nil || !h.classifier.Available() {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("image classification not configured", nil))
		return
	}

	fileHeader, err := c.FormFile("imagem")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("imagem file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to open uploaded file", err))
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to read uploaded file", err))
		return
	}

	label, err := h.classifier.Classify(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("image classification failed", err))
		return
	}

	c.JSON(http.StatusOK, dto.LabelResponse{Rotulo: label.Name, Confianca: label.Confidence})
}
