package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/artifacts"

	"github.com/gin-gonic/gin"
)

// ArtifactHandler defines the interface for the artifact history endpoints
type ArtifactHandler interface {
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type artifactHandler struct {
	artifactService artifacts.ArtifactService
}

// NewArtifactHandler creates a new ArtifactHandler
func NewArtifactHandler(artifactService artifacts.ArtifactService) ArtifactHandler {
	return &artifactHandler{artifactService: artifactService}
}

func newArtifactMetaResponse(a *artifacts.ArtifactMeta) ArtifactMetaResponse {
	return ArtifactMetaResponse{
		ID:              a.ID,
		DateTimeCreated: a.DateTimeCreated,
		Operation:       a.Operation,
		Source:          a.Source,
		Destination:     a.Destination,
		Units:           a.Units,
		Modulus:         a.Modulus,
		PublicExponent:  a.PublicExponent,
		Strategy:        a.Strategy,
	}
}

// ListMetadata handles the GET request to list artifact history with optional query parameters
// @Summary List artifact history
// @Tags Artifact
// @Produce json
// @Param operation query string false "encryption or decryption"
// @Param strategy query string false "fixed or coprime"
// @Param source query string false "Source substring"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ArtifactMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /artifacts [get]
func (handler *artifactHandler) ListMetadata(ctx *gin.Context) {
	query := artifacts.NewArtifactQuery()
	query.Operation = ctx.Query("operation")
	query.Strategy = ctx.Query("strategy")
	query.Source = ctx.Query("source")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(name); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
				return
			}
			*target = value
		}
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	list, err := handler.artifactService.List(ctx, query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []ArtifactMetaResponse{}
	for _, artifact := range list {
		listResponse = append(listResponse, newArtifactMetaResponse(artifact))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve one artifact
// @Summary Retrieve artifact metadata by ID
// @Tags Artifact
// @Produce json
// @Param id path string true "Artifact ID"
// @Success 200 {object} ArtifactMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /artifacts/{id} [get]
func (handler *artifactHandler) GetMetadataByID(ctx *gin.Context) {
	artifactID := ctx.Param("id")

	artifact, err := handler.artifactService.GetByID(ctx, artifactID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("artifact with id %s: %v", artifactID, err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, newArtifactMetaResponse(artifact))
}

// DeleteByID handles the DELETE request to remove one artifact
// @Summary Delete artifact metadata by ID
// @Tags Artifact
// @Produce json
// @Param id path string true "Artifact ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /artifacts/{id} [delete]
func (handler *artifactHandler) DeleteByID(ctx *gin.Context) {
	artifactID := ctx.Param("id")

	if err := handler.artifactService.DeleteByID(ctx, artifactID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting artifact with id %s: %v", artifactID, err.Error())})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted artifact with id %s", artifactID)})
}
