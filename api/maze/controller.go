package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/labyrinth-api/api/identity"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze creation, retrieval and solving.
type MazeController struct {
	mazeService *service.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms *service.MazeService) (*MazeController, error) {
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/", mc.list)
		mazes.GET("/:ID", mc.byID)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.GET("/:ID/text", mc.text)
		mazes.GET("/:ID/export", mc.export)
	}
}

// create handles maze creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, ok := requesterID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	record, err := mc.mazeService.Create(ctx, ownerID, service.CreateParams{
		Width:      request.Width,
		Height:     request.Height,
		Generator:  request.Generator,
		Pathfinder: request.Pathfinder,
		Seed:       request.Seed,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// list returns the requester's mazes.
func (mc *MazeController) list(ctx *gin.Context) {
	ownerID, ok := requesterID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	records, err := mc.mazeService.ByOwner(ctx, ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing mazes"})
		return
	}

	response := make([]*MazeResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newMazeResponse(record))
	}
	ctx.JSON(http.StatusOK, response)
}

// byID retrieves a single maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solve computes (or fetches) the maze's solution path.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	path, err := mc.mazeService.Solve(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUnsolvable) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "maze is unsolvable"})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{Path: path})
}

// text renders the maze as plain text; ?solution=true overlays the
// solution path.
func (mc *MazeController) text(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	includeSolution := ctx.Query("solution") == "true"
	text, err := mc.mazeService.RenderText(ctx, id, includeSolution)
	if err != nil {
		if errors.Is(err, service.ErrUnsolvable) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "maze is unsolvable"})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.String(http.StatusOK, text)
}

// export returns the structured export record of the maze.
func (mc *MazeController) export(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.Export(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// mazeID parses the :ID route parameter, replying 400 on failure.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// requesterID extracts the authenticated user's ID from the claims the
// authorization middleware attached.
func requesterID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	idString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
