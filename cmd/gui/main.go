package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/docudiff/docudiff/config"
	"github.com/docudiff/docudiff/internal/cache"
	"github.com/docudiff/docudiff/internal/controller"
	"github.com/docudiff/docudiff/internal/docstore"
	"github.com/docudiff/docudiff/internal/engine"
	"github.com/docudiff/docudiff/internal/localengine"
	"github.com/docudiff/docudiff/internal/viewsync"
	"github.com/docudiff/docudiff/pkg/env"
	"github.com/docudiff/docudiff/pkg/logging"
)

var (
	store        *docstore.DocumentStore
	compareCache *cache.CompareCache
	eng          *localengine.Engine
	ctrl         *controller.Controller
	server       *http.Server
	// Content ids of the two fixed demo assets.
	originalID string
	changedID  string
)

// Response represents API response structure
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// loggedServeMux wraps http.ServeMux with request logging
type loggedServeMux struct {
	mux *http.ServeMux
}

func (l *loggedServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fmt.Printf("🌐 Request: %s %s\n", r.Method, r.URL.Path)
	l.mux.ServeHTTP(w, r)
}

func main() {
	env.LoadEnv()
	config.LoadConfig("./config")
	logging.InitLogger(config.Config.Debug)

	if err := initializeViewer(); err != nil {
		fmt.Printf("❌ Failed to initialize viewer: %v\n", err)
		os.Exit(1)
	}

	// Try different ports if the default is busy
	port := config.Config.Port
	for i := 0; i < 10; i++ {
		testPort := port + i
		server = &http.Server{
			Addr:    fmt.Sprintf(":%d", testPort),
			Handler: createRouter(),
		}

		fmt.Printf("🚀 DocuDiff viewer starting on http://localhost:%d\n", testPort)
		fmt.Println("📄 Open your browser and navigate to the URL above")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if strings.Contains(err.Error(), "address already in use") ||
				strings.Contains(err.Error(), "bind: Only one usage of each socket address") {
				fmt.Printf("⚠️ Port %d is busy, trying next port...\n", testPort)
				continue
			}
			fmt.Printf("❌ Server failed to start: %v\n", err)
			break
		}
		break
	}
}

func initializeViewer() error {
	cfg := config.Config

	licenseKey := env.GetEnv("DOCUDIFF_LICENSE_KEY", cfg.LicenseKey)
	if licenseKey == "" {
		fmt.Println("ℹ️ No license key configured - using the bundled local engine")
	}

	var err error
	store, err = docstore.NewDocumentStore(cfg.StoragePath, vaultPassword(cfg))
	if err != nil {
		return fmt.Errorf("create document store: %v", err)
	}

	compareCache, err = cache.Open(cfg.CachePath)
	if err != nil {
		fmt.Printf("⚠️ Failed to open comparison cache: %v - continuing without cache\n", err)
		compareCache = nil
	}

	eng = localengine.New(compareCache)

	originalID, err = ingestAsset(cfg.OriginalPath)
	if err != nil {
		return err
	}
	changedID, err = ingestAsset(cfg.ChangedPath)
	if err != nil {
		return err
	}

	origPath, err := store.Path(originalID)
	if err != nil {
		return err
	}
	chgPath, err := store.Path(changedID)
	if err != nil {
		return err
	}

	// The browser drives frames; server-side passes run immediately.
	ctrl = controller.New(eng, origPath, chgPath, cfg.ContextWords, viewsync.ImmediateScheduler{})

	fmt.Println("✅ Viewer initialized")
	return nil
}

func vaultPassword(cfg *config.AppConfig) string {
	if !cfg.EncryptAtRest {
		return ""
	}
	return env.GetEnv("DOCUDIFF_VAULT_PASSWORD", cfg.VaultPassword)
}

// ingestAsset copies a configured PDF asset into the content-addressed
// store and returns its id.
func ingestAsset(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open asset %s: %v", path, err)
	}
	defer f.Close()
	id, err := store.Put(f)
	if err != nil {
		return "", fmt.Errorf("store asset %s: %v", path, err)
	}
	return id, nil
}

func createRouter() http.Handler {
	mux := http.NewServeMux()
	loggedMux := &loggedServeMux{mux: mux}

	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/api/compare", handleCompare)
	mux.HandleFunc("/api/changes", handleChanges)
	mux.HandleFunc("/api/state", handleState)
	mux.HandleFunc("/api/select", handleSelect)
	mux.HandleFunc("/api/select/annotation", handleSelectAnnotation)
	mux.HandleFunc("/api/next", handleNext)
	mux.HandleFunc("/api/prev", handlePrev)
	mux.HandleFunc("/api/sync/event", handleSyncEvent)
	mux.HandleFunc("/api/sync/lock", handleSyncLock)
	mux.HandleFunc("/api/doc/original", handleDocument(func() string { return originalID }))
	mux.HandleFunc("/api/doc/changed", handleDocument(func() string { return changedID }))

	return loggedMux
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, getIndexHTML())
}

func handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	if err := ctrl.CompareDocuments(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Found %d changes", ctrl.ChangeCount()),
		Data:    ctrl.Summaries(),
	})
}

func handleChanges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: ctrl.Summaries()})
}

// viewSnapshot is what the front end needs to render one pane.
type viewSnapshot struct {
	Page        int                          `json:"page"`
	Zoom        float64                      `json:"zoom"`
	ScrollLeft  float64                      `json:"scroll_left"`
	ScrollTop   float64                      `json:"scroll_top"`
	Annotations map[string]engine.Annotation `json:"annotations"`
}

func snapshotOf(v engine.View) viewSnapshot {
	snap := viewSnapshot{Zoom: 1.0}
	if v == nil {
		return snap
	}
	st := v.State()
	snap.Page = st.Page
	snap.Zoom = st.Zoom
	if c := v.ScrollContainer(); c != nil {
		snap.ScrollLeft, snap.ScrollTop = c.Offsets()
	}
	if lv, ok := v.(*localengine.View); ok {
		snap.Annotations = lv.Annotations()
	}
	return snap
}

func handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: stateData()})
}

func handleSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid body"})
		return
	}
	if err := ctrl.Select(req.Index); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "selected", Data: stateData()})
}

func handleSelectAnnotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	var req struct {
		ID     string `json:"id"`
		Source string `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid body"})
		return
	}
	// Route through the view so subscribers see the click like any other
	// engine event.
	if v := localView(req.Source); v != nil {
		v.Dispatch(engine.AnnotationClicked{ID: req.ID})
	} else if err := ctrl.SelectAnnotation(req.ID); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "selected", Data: stateData()})
}

func handleNext(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.Next(); err != nil {
		writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: stateData()})
}

func handlePrev(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.Prev(); err != nil {
		writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: stateData()})
}

// syncEventRequest mirrors one browser pane event.
type syncEventRequest struct {
	Source string  `json:"source"` // "original" or "changed"
	Type   string  `json:"type"`   // "scroll", "page" or "zoom"
	Page   int     `json:"page"`
	Zoom   float64 `json:"zoom"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
}

func handleSyncEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	var req syncEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid body"})
		return
	}

	v := localView(req.Source)
	if v == nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Unknown source view"})
		return
	}

	// Mirror the pane's state into the server-side view, then dispatch
	// the event so the synchronizer updates the counterpart.
	switch req.Type {
	case "scroll":
		v.ScrollContainer().SetOffsets(req.Left, req.Top)
		v.Dispatch(engine.PageScrolled{})
	case "page":
		v.SetState(v.State().WithPage(req.Page))
		v.Dispatch(engine.PageChanged{Page: req.Page})
	case "zoom":
		v.SetState(v.State().WithZoom(req.Zoom))
		v.Dispatch(engine.ZoomChanged{Zoom: req.Zoom})
	default:
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Unknown event type"})
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: stateData()})
}

func handleSyncLock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	var req struct {
		Locked bool `json:"locked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid body"})
		return
	}
	if ctrl.Sync == nil {
		writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: "No comparison loaded"})
		return
	}
	ctrl.Sync.SetLocked(req.Locked)
	writeJSON(w, http.StatusOK, Response{Success: true, Message: "ok", Data: map[string]bool{"locked": req.Locked}})
}

func handleDocument(id func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, err := store.Get(id())
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/pdf")
		io.Copy(w, rc)
	}
}

func localView(source string) *localengine.View {
	var v engine.View
	switch source {
	case "original":
		v = ctrl.OriginalView
	case "changed":
		v = ctrl.ChangedView
	default:
		return nil
	}
	lv, _ := v.(*localengine.View)
	return lv
}

func stateData() map[string]interface{} {
	locked := true
	if ctrl.Sync != nil {
		locked = ctrl.Sync.Locked()
	}
	return map[string]interface{}{
		"original": snapshotOf(ctrl.OriginalView),
		"changed":  snapshotOf(ctrl.ChangedView),
		"locked":   locked,
		"selected": ctrl.SelectedIndex(),
		"changes":  ctrl.Summaries(),
	}
}
