package cmd

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/midi"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/report"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// request bodies bigger than this are rejected
const maxBodyBytes = 16 << 20

// requests whose density profile would need more samples than this are rejected
const maxDensitySamples = 100000

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyses over HTTP",
	Long:  `Serves the analyses over HTTP on PORT. Saved reports are read from INDEX_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(":"+constants.GetPort(), constants.GetIndexDir())
	},
}

type server struct {
	indexDir string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidParameter),
		errors.Is(err, model.ErrInvalidInputOrder),
		errors.Is(err, model.ErrValueOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	defaults := model.DefaultParams()
	input := model.AnalyzeRequestBody{Params: &defaults}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "Could not unmarshal request body"))
		return
	}

	params := defaults
	if input.Params != nil {
		params = *input.Params
	}
	if err := checkDensitySamples(input.Notes, params.Window); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	res, err := report.Build(input.Notes, params)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// checkDensitySamples bounds the size of the density profile a request can ask
// for, since it grows with the latest note end over the window.
func checkDensitySamples(notes model.Notes, window float64) error {
	if err := model.CheckPositive("window", window); err != nil {
		return err
	}
	var maxEnd float64
	for _, n := range notes {
		if n.End > maxEnd {
			maxEnd = n.End
		}
	}
	if maxEnd/window > maxDensitySamples {
		return errors.Wrapf(model.ErrInvalidParameter,
			"density profile would need %.0f samples, limit is %d", math.Ceil(maxEnd/window), maxDensitySamples)
	}
	return nil
}

// paramsFromQuery starts from the defaults and overrides whatever the query
// string sets.
func paramsFromQuery(r *http.Request) (model.Params, error) {
	params := model.DefaultParams()
	q := r.URL.Query()
	floats := map[string]*float64{
		"window":              &params.Window,
		"quantization":        &params.PatternQuantization,
		"groove_quantization": &params.GrooveQuantization,
		"beats_per_bar":       &params.BeatsPerBar,
	}
	for name, dst := range floats {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return params, errors.Wrapf(model.ErrInvalidParameter, "%s: %v", name, err)
			}
			*dst = f
		}
	}
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.Wrapf(model.ErrInvalidParameter, "top: %v", err)
		}
		params.TopPatterns = n
	}
	return params, nil
}

// HandleAnalyzeMidi analyzes a MIDI file sent as the request body.
func (s *server) HandleAnalyzeMidi(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	smf, err := midi.ReadMidi(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := checkDensitySamples(midi.ExtractNotes(smf), params.Window); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	res, err := report.FromMidi(smf, params)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid report id"))
		return
	}
	res, err := report.Load(filepath.Join(s.indexDir, id.String()+".dat"))
	if err != nil {
		logrus.Debugf("report %v: %v", id, err)
		writeError(w, http.StatusNotFound, errors.Errorf("report %v not found", id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("request")
	})
}

func NewRouter(indexDir string) *mux.Router {
	s := &server{indexDir: indexDir}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", s.HandleAnalyze).Methods("POST")
	router.HandleFunc("/analyze/midi", s.HandleAnalyzeMidi).Methods("POST")
	router.HandleFunc("/reports/{id}", s.HandleGetReport).Methods("GET")
	router.HandleFunc("/health", s.HandleHealth).Methods("GET")
	router.Use(logRequests)
	return router
}

func serve(addr, indexDir string) error {
	handler := cors.Default().Handler(NewRouter(indexDir))
	logrus.Infof("Listening on %v", addr)
	return http.ListenAndServe(addr, handler)
}
