package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maraiyur/seyyul"
	"github.com/maraiyur/seyyul/gemini"
)

var (
	serveAddr    string
	serveEnhance bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveEnhance, "enhance", false, "rewrite meanings through Gemini (needs GEMINI_API_KEY)")
}

var latinWords = regexp.MustCompile(`\b[a-zA-Z]{2,}\b`)

type server struct {
	analyzer *seyyul.Analyzer
	norm     *seyyul.Normalizer
	enhancer *gemini.Enhancer
	cache    *resultCache
	log      *zap.Logger
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func runServe(cmd *cobra.Command, _ []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	for _, cs := range analyzer.Store().Stats() {
		if cs.Skipped > 0 {
			log.Warn("corpus loaded degraded",
				zap.String("corpus", cs.Key),
				zap.Int("verses", cs.Verses),
				zap.Int("skipped", cs.Skipped))
		}
	}

	s := &server{
		analyzer: analyzer,
		norm:     seyyul.NewNormalizer(),
		cache:    newResultCache(256),
		log:      log,
	}
	if serveEnhance {
		s.enhancer, err = gemini.New(cmd.Context(), log)
		if err != nil {
			return fmt.Errorf("creating enhancer: %w", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.POST("/api/analyze", s.handleAnalyze)
	e.GET("/api/health", s.handleHealth)

	log.Info("listening", zap.String("addr", serveAddr))
	if err := e.Start(serveAddr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *server) handleAnalyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	text := strings.TrimSpace(req.Text)
	if latinWords.MatchString(text) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "தயவுசெய்து தமிழ் உரையை மட்டும் உள்ளிடவும்",
		})
	}

	key := s.norm.Join(s.norm.Normalize(text))
	if res, ok := s.cache.get(key); ok {
		return c.JSON(http.StatusOK, res)
	}

	res, err := s.analyzer.Analyze(text)
	if err != nil {
		if errors.Is(err, seyyul.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error: "உரை காலியாக உள்ளது; தமிழ் உரையை உள்ளிடவும்",
			})
		}
		s.log.Error("analysis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
	}

	if s.enhancer != nil {
		res.MeaningText = s.enhancer.Enhance(c.Request().Context(), text, res.MeaningText)
	}

	s.cache.put(key, res)
	return c.JSON(http.StatusOK, res)
}

func (s *server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"corpora": s.analyzer.Store().Stats(),
	})
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-corpus verse counts",
	RunE: func(_ *cobra.Command, _ []string) error {
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}
		w := os.Stdout
		for _, cs := range analyzer.Store().Stats() {
			fmt.Fprintf(w, "%-16s %-20s %4d verses", cs.Key, cs.Title, cs.Verses)
			if cs.Skipped > 0 {
				fmt.Fprintf(w, " (%d skipped)", cs.Skipped)
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}
