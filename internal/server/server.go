package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/shubhamsWEB/uifinityai/internal/config"
	"github.com/shubhamsWEB/uifinityai/internal/core"
	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
	"github.com/shubhamsWEB/uifinityai/internal/llm"
	"github.com/shubhamsWEB/uifinityai/internal/store"
)

type Server struct {
	Engine *core.Engine
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s, starting from defaults: %v", cfgPath, err)
		cfg = &config.Config{}
	}
	applyEnvOverrides(cfg)

	st, err := newStore(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	figmaClient := figma.NewClient(cfg.Figma.APIToken, cfg.Figma.BaseURL)
	if cfg.Figma.NodeBatchSize > 0 {
		figmaClient.BatchSize = cfg.Figma.NodeBatchSize
	}

	llmClient, embedder, err := llm.NewClient(context.Background(), llm.Config{
		Provider:       cfg.LLM.Provider,
		Model:          cfg.LLM.Model,
		EmbeddingModel: cfg.LLM.EmbeddingModel,
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if embedder == nil {
		log.Println("Warning: provider has no embedding support; semantic matching is disabled")
	}

	engine := core.NewEngine(figmaClient, st, llmClient, embedder, cfg.Matching.Rules, cfg.Matching.EmbeddingCacheSize)
	return &Server{Engine: engine}
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("FIGMA_API_TOKEN"); v != "" {
		cfg.Figma.APIToken = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Store.Kind = "memgraph"
		cfg.Store.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Store.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Store.Password = v
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
}

func newStore(cfg config.StoreConfig) (store.DesignSystemStore, error) {
	switch cfg.Kind {
	case "", "memory":
		log.Println("Using in-memory design system store")
		return store.NewMemoryStore(), nil
	case "memgraph":
		return store.NewMemgraphStore(cfg.URI, cfg.User, cfg.Password)
	default:
		return nil, &unknownStoreError{kind: cfg.Kind}
	}
}

type unknownStoreError struct{ kind string }

func (e *unknownStoreError) Error() string { return "unknown store kind: " + e.kind }

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/design-systems", s.Extract)
	r.GET("/design-systems", s.List)
	r.GET("/design-systems/:id", s.Get)
	r.DELETE("/design-systems/:id", s.Delete)
	r.GET("/design-systems/:id/export", s.Export)
	r.POST("/design-systems/import", s.Import)
	r.POST("/design-systems/:id/match", s.Match)
	r.POST("/design-systems/:id/generate", s.Generate)

	return r
}

type ExtractRequest struct {
	FileKey string `json:"file_key" binding:"required"`
	Name    string `json:"name"`
}

func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ds, err := s.Engine.ExtractDesignSystem(c.Request.Context(), req.FileKey, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (s *Server) List(c *gin.Context) {
	summaries, err := s.Engine.ListDesignSystems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"design_systems": summaries})
}

func (s *Server) Get(c *gin.Context) {
	ds, err := s.Engine.GetDesignSystem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (s *Server) Delete(c *gin.Context) {
	if err := s.Engine.DeleteDesignSystem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) Export(c *gin.Context) {
	raw, err := s.Engine.ExportDesignSystem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (s *Server) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ds, err := s.Engine.ImportDesignSystem(c.Request.Context(), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ds)
}

type MatchRequest struct {
	Elements []model.RequirementElement `json:"elements" binding:"required"`
}

func (s *Server) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	results, err := s.Engine.MatchElements(c.Request.Context(), c.Param("id"), req.Elements)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type GenerateRequest struct {
	Elements  []model.RequirementElement `json:"elements" binding:"required"`
	Framework string                     `json:"framework"`
}

func (s *Server) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	files, err := s.Engine.GenerateComponentCode(c.Request.Context(), c.Param("id"), req.Elements, req.Framework)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Design system not found"})
	case errors.Is(err, figma.ErrUnavailable):
		log.Printf("Upstream design tool unavailable: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Design tool API unavailable"})
	default:
		log.Printf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
