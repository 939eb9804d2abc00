package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/usecase"
)

// Handler exposes the engine operations as a JSON API. All endpoints are
// stateless: the client sends the boards it holds and receives derived
// results, so the server never owns a game in progress.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/solve", h.solve)
	api.POST("/validate", h.validate)
	api.POST("/complete", h.complete)
	api.POST("/compare", h.compare)
	api.POST("/stats", h.stats)
	api.POST("/hint", h.hint)
	api.GET("/puzzle/new", h.newPuzzle)
	api.POST("/save", h.save)
	api.GET("/load/:id", h.load)
	api.GET("/list", h.list)
}

// checkCells guards the core's documented precondition: cell values are
// 0..9. JSON binding alone accepts any uint8, so the adapter rejects the
// rest here before a board reaches the engine.
func checkCells(g *[9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("cell (%d,%d) holds %d, want 0-9", r, c, g[r][c])
			}
		}
	}
	return nil
}

type boardReq struct {
	Board [9][9]uint8 `json:"board"`
	Fixed [9][9]bool  `json:"fixed"`
}

func (r *boardReq) toDomain() (*domain.Board, error) {
	if err := checkCells(&r.Board); err != nil {
		return nil, err
	}
	return &domain.Board{Values: r.Board, Fixed: r.Fixed}, nil
}

type pairReq struct {
	Board  [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed"`
	Solved [9][9]uint8 `json:"solved"`
}

func (r *pairReq) toDomain() (*domain.Board, *domain.Board, error) {
	if err := checkCells(&r.Board); err != nil {
		return nil, nil, err
	}
	if err := checkCells(&r.Solved); err != nil {
		return nil, nil, err
	}
	return &domain.Board{Values: r.Board, Fixed: r.Fixed}, &domain.Board{Values: r.Solved}, nil
}

func (h *Handler) solve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      err.Error(),
			"durationMs": st.Duration.Milliseconds(),
			"nodes":      st.Nodes,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      out.Values,
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

func (h *Handler) validate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

func (h *Handler) complete(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	done, err := h.UC.Complete(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complete": done})
}

func (h *Handler) compare(c *gin.Context) {
	var req pairReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	current, solved, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.UC.Compare(current, solved))
}

func (h *Handler) stats(c *gin.Context) {
	var req pairReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	current, solved, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.UC.Progress(c.Request.Context(), current, solved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) hint(c *gin.Context) {
	var req pairReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	current, solved, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), current, solved)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "hint": hh})
}

func (h *Handler) newPuzzle(c *gin.Context) {
	b, err := h.UC.NewPuzzle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := checkCells(&p.Board.Values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
