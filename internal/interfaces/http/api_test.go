package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/linkbi-api/internal/application/auth"
	"github.com/jhoicas/linkbi-api/internal/application/directory"
	"github.com/jhoicas/linkbi-api/internal/application/media"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
	"github.com/jhoicas/linkbi-api/internal/domain/moderation"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/memory"
	"github.com/jhoicas/linkbi-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/linkbi-api/internal/interfaces/http"
)

const (
	adminEmail    = "moderation@linkbi.test"
	adminPassword = "mot-de-passe-solide"
)

type testEnv struct {
	app   *fiber.App
	repo  *memory.ProviderRepo
	token string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := memory.NewProviderRepository()
	admins := memory.NewAdminRepository()
	authUC := auth.NewAuthUseCase(admins, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	require.NoError(t, authUC.EnsureAdmin(context.Background(), adminEmail, adminPassword))

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	app := apphttp.NewApp("linkbi-test", apphttp.RouterDeps{
		Listing:    directory.NewListingUseCase(repo),
		Submission: directory.NewSubmissionUseCase(repo, nil),
		Moderation: directory.NewModerationUseCase(repo, nil),
		AuthUC:     authUC,
		Upload:     media.NewUploadUseCase(store, nil),
		JWTSecret:  testJWTSecret,
		LoginLimit: apphttp.NewRateLimiter(100),
		UploadDir:  dir,
	})
	env := &testEnv{app: app, repo: repo}
	env.token = env.login(t)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	resp, raw := e.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": adminEmail, "password": adminPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.Token)
	assert.Equal(t, adminEmail, out.User.Email)
	assert.Equal(t, "admin", out.User.Role)
	return out.Token
}

func validSubmission() map[string]any {
	return map[string]any{
		"nom":         "Studio Lumière",
		"domaine":     "Photographie",
		"ville":       "Lyon",
		"description": "Portraits et événements",
		"telephone":   "+33 6 12 34 56 78",
	}
}

func decodeList(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func errorMessage(t *testing.T, raw []byte) string {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	msg, _ := out["error"].(string)
	return msg
}

func TestCicloCompleto_InscripcionModeracionPublicacion(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(t, http.MethodPost, "/api/prestataires", validSubmission(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "en_attente", created["statut"])
	assert.Equal(t, []any{}, created["photos"])
	id := int64(created["id"].(float64))

	_, raw = env.do(t, http.MethodGet, "/api/prestataires", nil, "")
	assert.Empty(t, decodeList(t, raw), "una fiche en attente no es pública")

	resp, raw = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/prestataires/%d", id), map[string]string{"statut": "valide"}, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var upd map[string]any
	require.NoError(t, json.Unmarshal(raw, &upd))
	assert.Equal(t, "valide", upd["statut"])
	assert.Equal(t, "Studio Lumière", upd["nom"])
	assert.Contains(t, upd, "updatedAt")

	resp, raw = env.do(t, http.MethodGet, "/api/prestataires", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=300, s-maxage=300, stale-while-revalidate=600", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "max-age=300", resp.Header.Get("CDN-Cache-Control"))
	list := decodeList(t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "Studio Lumière", list[0]["nom"])
	assert.NotContains(t, list[0], "statut")

	resp, raw = env.do(t, http.MethodGet, fmt.Sprintf("/api/prestataires/%d", id), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(raw, &detail))
	assert.True(t, strings.HasPrefix(detail["whatsappUrl"].(string), "https://wa.me/33612345678?text="))

	// rechazo: sale del listado público pero sigue en el de moderación
	resp, _ = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/prestataires/%d", id), map[string]string{"statut": "rejete"}, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, raw = env.do(t, http.MethodGet, "/api/prestataires", nil, "")
	assert.Empty(t, decodeList(t, raw))
	resp, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/prestataires/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = env.do(t, http.MethodGet, "/api/admin/prestataires", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "private, max-age=60", resp.Header.Get("Cache-Control"))
	admin := decodeList(t, raw)
	require.Len(t, admin, 1)
	assert.Equal(t, "rejete", admin[0]["statut"])
	assert.NotContains(t, admin[0], "linkedin")
}

func TestInscripcion_Validaciones(t *testing.T) {
	env := newTestEnv(t)

	sub := validSubmission()
	delete(sub, "ville")
	sub["telephone"] = "   "
	resp, raw := env.do(t, http.MethodPost, "/api/prestataires", sub, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Le champ ville est requis", errorMessage(t, raw))

	resp, raw = env.do(t, http.MethodPost, "/api/prestataires", "{no es json", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Corps de requête invalide", errorMessage(t, raw))

	sub = validSubmission()
	sub["nom"] = "  Studio Lumière  "
	sub["statut"] = "valide"
	sub["email"] = "   "
	sub["photos"] = []string{" https://cdn/a.jpg ", ""}
	resp, raw = env.do(t, http.MethodPost, "/api/prestataires", sub, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Studio Lumière", created["nom"])
	assert.Equal(t, "en_attente", created["statut"], "el statut enviado por el cliente se ignora")
	assert.Nil(t, created["email"])
	assert.Equal(t, []any{"https://cdn/a.jpg"}, created["photos"])
}

func TestListado_OrdenPorNotaNulasAlFinal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, n := range []string{"4.0", "", "4.8", "4.5"} {
		p := &entity.Provider{Nom: "P" + n, Domaine: "D", Ville: "V", Description: "d", Telephone: "1", Statut: moderation.StatusApproved}
		if n != "" {
			d := decimal.RequireFromString(n)
			p.Note = &d
		}
		require.NoError(t, env.repo.Create(ctx, p))
	}

	_, raw := env.do(t, http.MethodGet, "/api/prestataires", nil, "")
	list := decodeList(t, raw)
	require.Len(t, list, 4)
	assert.Equal(t, 4.8, list[0]["note"])
	assert.Equal(t, 4.5, list[1]["note"])
	assert.Equal(t, 4.0, list[2]["note"])
	assert.Nil(t, list[3]["note"])
}

func TestListado_FiltroVille(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, ville := range []string{"Orléans", "Paris"} {
		require.NoError(t, env.repo.Create(ctx, &entity.Provider{Nom: "N", Domaine: "D", Ville: ville, Description: "d", Telephone: "1", Statut: moderation.StatusApproved}))
	}
	_, raw := env.do(t, http.MethodGet, "/api/prestataires?ville=orleans", nil, "")
	list := decodeList(t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "Orléans", list[0]["ville"])
}

func TestModeracion_Errores(t *testing.T) {
	env := newTestEnv(t)
	resp, raw := env.do(t, http.MethodPost, "/api/prestataires", validSubmission(), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	path := fmt.Sprintf("/api/admin/prestataires/%d", int64(created["id"].(float64)))

	for _, body := range []any{map[string]string{"statut": "publie"}, map[string]string{}} {
		resp, raw = env.do(t, http.MethodPatch, path, body, env.token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Statut invalide", errorMessage(t, raw))
	}
	_, raw = env.do(t, http.MethodGet, "/api/admin/prestataires", nil, env.token)
	assert.Equal(t, "en_attente", decodeList(t, raw)[0]["statut"], "un statut inválido no escribe")

	resp, _ = env.do(t, http.MethodPatch, "/api/admin/prestataires/9999", map[string]string{"statut": "valide"}, env.token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = env.do(t, http.MethodPatch, "/api/admin/prestataires/abc", map[string]string{"statut": "valide"}, env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodDelete, "/api/admin/prestataires/9999", nil, env.token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, raw = env.do(t, http.MethodDelete, path, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(raw))
	resp, _ = env.do(t, http.MethodDelete, path, nil, env.token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdmin_SinTokenOCredencialesMalas(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet, "/api/admin/prestataires", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = env.do(t, http.MethodDelete, "/api/admin/prestataires/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": adminEmail, "password": "incorrect"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Identifiants incorrects", errorMessage(t, raw))

	resp, _ = env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": "inconnu@linkbi.test", "password": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"email": adminEmail}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_LimitePorIP(t *testing.T) {
	env := newTestEnv(t)
	app := apphttp.NewApp("linkbi-test", apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(memory.NewAdminRepository(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin}),
		JWTSecret:  testJWTSecret,
		LoginLimit: apphttp.NewRateLimiter(2),
	})
	env.app = app
	body := map[string]string{"email": adminEmail, "password": "incorrect"}
	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, http.MethodPost, "/api/admin/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, _ := env.do(t, http.MethodPost, "/api/admin/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)
	var png bytes.Buffer
	require.NoError(t, imaging.Encode(&png, imaging.New(40, 30, color.NRGBA{G: 255, A: 255}), imaging.PNG))

	tests := []struct {
		name    string
		req     *http.Request
		status  int
		message string
	}{
		{"sin archivo", multipartRequest(t, "", "", "", nil), http.StatusBadRequest, "Aucun fichier fourni"},
		{"no es imagen", multipartRequest(t, "file", "cv.pdf", "application/pdf", []byte("%PDF-1.4")), http.StatusBadRequest, "Le fichier doit être une image"},
		{"demasiado grande", multipartRequest(t, "file", "big.png", "image/png", make([]byte, media.MaxUploadBytes+1)), http.StatusBadRequest, "Le fichier est trop volumineux (max 10MB)"},
		{"png válido", multipartRequest(t, "file", "logo.png", "image/png", png.Bytes()), http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.app.Test(tt.req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			raw, _ := io.ReadAll(resp.Body)
			require.Equal(t, tt.status, resp.StatusCode, string(raw))
			if tt.message != "" {
				assert.Equal(t, tt.message, errorMessage(t, raw))
				return
			}
			var out map[string]any
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, float64(40), out["width"])
			assert.Equal(t, float64(30), out["height"])
			assert.Equal(t, "png", out["format"])
			assert.True(t, strings.HasPrefix(out["secure_url"].(string), "/uploads/prestataire_"))

			// el archivo local se sirve en /uploads
			get, err := env.app.Test(httptest.NewRequest(http.MethodGet, out["secure_url"].(string), nil), -1)
			require.NoError(t, err)
			defer get.Body.Close()
			assert.Equal(t, http.StatusOK, get.StatusCode)
			assert.Contains(t, get.Header.Get("Content-Security-Policy"), "sandbox")
			assert.Equal(t, "nosniff", get.Header.Get("X-Content-Type-Options"))
		})
	}
}

func uploadOK(t *testing.T, env *testEnv, filename, contentType string, data []byte) map[string]any {
	t.Helper()
	resp, err := env.app.Test(multipartRequest(t, "file", filename, contentType, data), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestUpload_SVGServidoComoAdjuntoAislado(t *testing.T) {
	env := newTestEnv(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	out := uploadOK(t, env, "logo.svg", "image/svg+xml", svg)
	assert.Equal(t, "svg", out["format"])

	get, err := env.app.Test(httptest.NewRequest(http.MethodGet, out["secure_url"].(string), nil), -1)
	require.NoError(t, err)
	defer get.Body.Close()
	assert.Equal(t, http.StatusOK, get.StatusCode)
	assert.Equal(t, "attachment", get.Header.Get("Content-Disposition"))
	assert.Contains(t, get.Header.Get("Content-Security-Policy"), "sandbox")
}

func TestUpload_HEICAceptadoSinDimensiones(t *testing.T) {
	env := newTestEnv(t)
	out := uploadOK(t, env, "IMG_0042.heic", "image/heic", []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00"))
	assert.Equal(t, "heic", out["format"])
	assert.Equal(t, float64(0), out["width"])
	assert.Equal(t, float64(0), out["height"])
}
