package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
)

// BoardController serves the board routes.
type BoardController struct {
	store *board.Store
}

// NewBoardController creates a controller backed by store.
func NewBoardController(store *board.Store) *BoardController {
	return &BoardController{store: store}
}

// Register mounts the board routes on route.
func (bc *BoardController) Register(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.GET("/:id", bc.get)
		boards.DELETE("/:id", bc.remove)
		boards.POST("/:id/walls", bc.toggleWall)
		boards.PUT("/:id/walls", bc.paintWall)
		boards.DELETE("/:id/walls", bc.clear)
		boards.POST("/:id/search", bc.search)
	}
}

func (bc *BoardController) create(c *gin.Context) {
	var req createBoardRequest
	// An empty body means "all defaults".
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
	}
	v, err := bc.store.Create(board.Spec{Rows: req.Rows, Cols: req.Cols, Start: req.Start, End: req.End})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (bc *BoardController) get(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	v, err := bc.store.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (bc *BoardController) remove(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	if err := bc.store.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (bc *BoardController) toggleWall(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	var req toggleWallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	v, err := bc.store.ToggleWall(id, grid.Coord{Row: *req.Row, Col: *req.Col})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (bc *BoardController) paintWall(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	var req paintWallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	v, err := bc.store.SetWall(id, grid.Coord{Row: *req.Row, Col: *req.Col}, *req.Wall)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (bc *BoardController) clear(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	v, err := bc.store.Clear(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (bc *BoardController) search(c *gin.Context) {
	id, ok := boardID(c)
	if !ok {
		return
	}
	out, err := bc.store.Search(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSearchResponse(out))
}

// boardID parses the :id parameter, answering 400 when it is not a UUID.
func boardID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

// fail maps domain errors onto HTTP status codes.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrNotFound):
		abort(c, http.StatusNotFound, err)
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrInvalidConfiguration),
		errors.Is(err, grid.ErrMalformedBoard):
		abort(c, http.StatusBadRequest, err)
	default:
		abort(c, http.StatusInternalServerError, err)
	}
}

func abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
