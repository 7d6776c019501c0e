package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves the /mazes routes.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController creates a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:id", mc.byID)
		mazes.GET("/:id/solution", mc.solution)
		mazes.GET("/:id/image", mc.image)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.list)
	}
}

// generate creates a maze owned by the caller.
func (mc *MazeController) generate(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, m, err := mc.mazeService.Generate(ctx.Request.Context(), owner, i.GenerateRequest{
		Width:     request.Width,
		Height:    request.Height,
		Seed:      request.Seed,
		Algorithm: request.Algorithm,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record, m))
}

// list returns the caller's mazes, newest first.
func (mc *MazeController) list(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	records, err := mc.mazeService.ListByOwner(ctx.Request.Context(), owner)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]SummaryResponse, 0, len(records))
	for _, r := range records {
		response = append(response, newSummaryResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	record, m, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record, m))
}

func (mc *MazeController) solution(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	path, found, err := mc.mazeService.Solve(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if path == nil {
		path = []maze.Coordinate{}
	}
	ctx.JSON(http.StatusOK, &SolutionResponse{
		Found:  found,
		Length: len(path),
		Path:   path,
	})
}

// image serves the maze as PNG; ?solution=true paints the shortest path.
func (mc *MazeController) image(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	withSolution := false
	if raw := ctx.Query("solution"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "solution must be a boolean"})
			return
		}
		withSolution = parsed
	}

	img, err := mc.mazeService.Render(ctx.Request.Context(), id, withSolution)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", img)
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrDimensionTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoOwner):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while handling maze request"})
	}
}
