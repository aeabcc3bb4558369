package server

import (
	"errors"
	"log/slog"
	"net/http"

	"exlog/domain"
	"exlog/internal/config"

	"github.com/gin-gonic/gin"
)

type Server struct {
	log *slog.Logger
	srv *domain.UserService
}

func NewServer(db domain.UserStore, cfg *config.Config, log *slog.Logger, r *gin.Engine) *Server {
	server := &Server{
		log: log,
		srv: domain.NewUserService(db, log),
	}

	r.Use(server.LoggingMiddleware())

	r.StaticFile("/", "./static/index.html")

	api := r.Group("/api/exercise")
	{
		api.POST("/new-user", server.newUserHandler)
		api.GET("/users", server.usersHandler)
		api.POST("/add", server.addExerciseHandler)
		api.GET("/log", server.logHandler)
		api.GET("/log/:userId", server.userLogHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": "not found"})
	})

	server.log.Info("router configured")
	return server
}

func (s Server) newUserHandler(c *gin.Context) {
	const op = "gates.server.newUserHandler"
	var req newUserRequest
	if err := c.ShouldBind(&req); err != nil {
		s.log.Debug(op, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoUsername.Error()})
		return
	}
	user, err := s.srv.Register(c.Request.Context(), domain.Username(req.Username))
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

func (s Server) usersHandler(c *gin.Context) {
	const op = "gates.server.usersHandler"
	users, err := s.srv.Users(c.Request.Context())
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{ID: u.ID, Username: u.Username})
	}
	c.JSON(http.StatusOK, resp)
}

func (s Server) addExerciseHandler(c *gin.Context) {
	const op = "gates.server.addExerciseHandler"
	var req addExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		s.log.Debug(op, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingFields.Error()})
		return
	}
	user, ex, err := s.srv.AddExercise(c.Request.Context(), domain.UserID(req.UserID), domain.Exercise{
		Description: req.Description,
		Duration:    int(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, exerciseResponse{
		Username:    user.Username,
		ID:          user.ID,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date,
	})
}

func (s Server) logHandler(c *gin.Context) {
	const op = "gates.server.logHandler"
	id := c.Query("userId")
	result, err := s.srv.Log(c.Request.Context(), domain.UserID(id), domain.LogQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	resp := logResponse{
		UserID:   result.User.ID,
		Username: result.User.Username,
		Count:    len(result.Entries),
		Log:      toEntries(result.Entries),
	}
	if result.Ranged {
		resp.From = result.From
		resp.To = result.To
	}
	c.JSON(http.StatusOK, resp)
}

func (s Server) userLogHandler(c *gin.Context) {
	const op = "gates.server.userLogHandler"
	user, err := s.srv.User(c.Request.Context(), domain.UserID(c.Param("userId")))
	if err != nil {
		s.respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, userLogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(user.Log),
		Log:      toEntries(user.Log),
	})
}

// respondError is the single place domain errors turn into HTTP
// statuses. Anything outside the taxonomy is a store failure and stays
// generic.
func (s Server) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.log.Debug(op, "err", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken):
		s.log.Debug(op, "err", err)
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoUsername),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrBadDate),
		errors.Is(err, domain.ErrBadLimit),
		errors.Is(err, domain.ErrFilterConflict):
		s.log.Debug(op, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error(op, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
