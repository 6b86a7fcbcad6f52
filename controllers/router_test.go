package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bipuldey19/hungrypanda-handler/configs"
	"github.com/bipuldey19/hungrypanda-handler/entity"
	"github.com/bipuldey19/hungrypanda-handler/gateway"
	"github.com/bipuldey19/hungrypanda-handler/middlewares"
	"github.com/bipuldey19/hungrypanda-handler/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	added    []gateway.AddItemPayload
	statuses []gateway.StatusPayload
	deleted  []gateway.DeletePayload
}

func (g *recordingGateway) AddItem(p gateway.AddItemPayload) error {
	g.added = append(g.added, p)
	return nil
}
func (g *recordingGateway) UpdateStatus(p gateway.StatusPayload) error {
	g.statuses = append(g.statuses, p)
	return nil
}
func (g *recordingGateway) DeleteItem(p gateway.DeletePayload) error {
	g.deleted = append(g.deleted, p)
	return nil
}

type recordingUploader struct{ uploads []string }

func (u *recordingUploader) Upload(data []byte, name, contentType string) (string, error) {
	u.uploads = append(u.uploads, name)
	return "https://cdn.example.com/public/" + name, nil
}

type staticLister struct {
	items []entity.MenuItem
	err   error
}

func (l *staticLister) ListItems() ([]entity.MenuItem, error) { return l.items, l.err }

type testEnv struct {
	router   *gin.Engine
	gateway  *recordingGateway
	uploader *recordingUploader
	sessions *services.SessionStore
}

func newTestEnv(t *testing.T, lister services.ItemLister) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &configs.Config{
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
		SessionTTL:    24 * time.Hour,
		CacheTTL:      time.Minute,
	}

	sessions := services.NewSessionStore(cfg.SessionTTL)
	auth, err := services.NewAuthService(cfg.AdminPassword, sessions)
	require.NoError(t, err)

	if lister == nil {
		lister = &staticLister{}
	}
	catalog := services.NewCatalogService(lister, cfg.CacheTTL)
	gw := &recordingGateway{}
	up := &recordingUploader{}
	items := services.NewItemService(up, gw, catalog)
	dashboard := services.NewDashboardService(catalog)

	authCtrl := NewAuthController(auth, cfg)
	itemCtrl := NewItemController(items, catalog, sessions)
	dashCtrl := NewDashboardController(dashboard, sessions)

	r := gin.New()
	r.POST("/auth/login", authCtrl.Login)
	g := r.Group("/", middlewares.AuthMiddleware(cfg.SessionSecret, sessions))
	{
		g.POST("/auth/logout", authCtrl.Logout)
		g.GET("/auth/me", authCtrl.Me)
		g.GET("/dashboard", dashCtrl.Index)
		g.POST("/items", itemCtrl.Create)
		g.GET("/items/:id", itemCtrl.Get)
		g.PATCH("/items/:id/status", itemCtrl.UpdateStatus)
		g.POST("/items/:id/details", itemCtrl.ToggleDetails)
		g.POST("/items/:id/delete", itemCtrl.RequestDelete)
		g.POST("/items/:id/delete/cancel", itemCtrl.CancelDelete)
		g.POST("/items/:id/delete/confirm", itemCtrl.ConfirmDelete)
	}

	return &testEnv{router: r, gateway: gw, uploader: up, sessions: sessions}
}

func (e *testEnv) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, password string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	body, _ := json.Marshal(gin.H{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := e.do(req, nil)

	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookie && c.Value != "" {
			return w, c
		}
	}
	return w, nil
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func multipartItem(t *testing.T, fields map[string]string, images map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, names := range images {
		for _, name := range names {
			fw, err := mw.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = fw.Write([]byte("imagedata"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

var errUnreachable = errors.New("db unreachable")
