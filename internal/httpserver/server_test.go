package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/endgame/apps/go-server/internal/catalog"
	"github.com/robalobadob/endgame/apps/go-server/internal/config"
	"github.com/robalobadob/endgame/apps/go-server/internal/game"
	"github.com/robalobadob/endgame/apps/go-server/internal/store"
)

// newTestServer returns a server whose word source always yields word.
func newTestServer(t *testing.T, word string) *Server {
	t.Helper()
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0", RequestTimeout: 5 * time.Second},
		Game:    config.GameConfig{AllowFixedWord: true, DailySalt: "salt"},
		Session: config.SessionConfig{Secret: "test-secret", CookieName: "endgame_session", TTL: time.Hour},
	}
	s, err := New(cfg, store.NewMemoryStore(), cat)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.pickWord = func(game.Mode) string { return word }
	return s
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, game.Board) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	var b game.Board
	if rec.Code < 300 {
		if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return rec, b
}

func TestAPIWinningGame(t *testing.T) {
	s := newTestServer(t, "python")
	rec, b := doJSON(t, s, http.MethodPost, "/api/game/new", `{"word":"Python"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("new: status %d body %s", rec.Code, rec.Body)
	}
	if b.GameID == "" || b.State.Over || b.Word != "" || len(b.Tiles) != 6 {
		t.Fatalf("new board = %+v", b)
	}
	if b.State.MaxWrong != 8 || len(b.Chips) != 9 {
		t.Fatalf("catalog not applied: %+v", b.State)
	}

	for _, l := range []string{"p", "y", "t", "h", "o", "n"} {
		rec, b = doJSON(t, s, http.MethodPost, "/api/game/"+b.GameID+"/guess", `{"letter":"`+l+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("guess %s: status %d body %s", l, rec.Code, rec.Body)
		}
	}
	if !b.State.Won || !b.State.Over || b.State.WrongCount != 0 || b.Outcome != game.OutcomeWon {
		t.Fatalf("final state = %+v", b.State)
	}
	if b.Word != "python" || b.Banner != game.BannerWon {
		t.Fatalf("word = %q banner = %q", b.Word, b.Banner)
	}

	// a repeat is accepted as a no-op, a new letter is refused
	if rec, _ := doJSON(t, s, http.MethodPost, "/api/game/"+b.GameID+"/guess", `{"letter":"p"}`); rec.Code != http.StatusOK {
		t.Fatalf("repeat after win: status %d", rec.Code)
	}
	if rec, _ := doJSON(t, s, http.MethodPost, "/api/game/"+b.GameID+"/guess", `{"letter":"z"}`); rec.Code != http.StatusConflict {
		t.Fatalf("new letter after win: status %d, want 409", rec.Code)
	}
}

func TestAPILosingGame(t *testing.T) {
	s := newTestServer(t, "go")
	_, b := doJSON(t, s, http.MethodPost, "/api/game/new", `{}`)
	for _, l := range strings.Split("zxqwbcda", "") {
		_, b = doJSON(t, s, http.MethodPost, "/api/game/"+b.GameID+"/guess", `{"letter":"`+l+`"}`)
	}
	if !b.State.Lost || b.State.WrongCount != 8 || b.State.Remaining != 0 {
		t.Fatalf("state = %+v", b.State)
	}
	if !b.Tiles[0].Missed || !b.Tiles[1].Missed || b.Tiles[0].Letter != "G" {
		t.Fatalf("tiles = %+v", b.Tiles)
	}

	rec, got := doJSON(t, s, http.MethodGet, "/api/game/"+b.GameID, "")
	if rec.Code != http.StatusOK || got.Outcome != game.OutcomeLost {
		t.Fatalf("get: status %d outcome %q", rec.Code, got.Outcome)
	}
}

func TestAPIErrors(t *testing.T) {
	s := newTestServer(t, "rust")
	_, b := doJSON(t, s, http.MethodPost, "/api/game/new", ``)

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"unknown game", http.MethodGet, "/api/game/nope", "", http.StatusNotFound},
		{"guess unknown game", http.MethodPost, "/api/game/nope/guess", `{"letter":"a"}`, http.StatusNotFound},
		{"invalid letter", http.MethodPost, "/api/game/" + b.GameID + "/guess", `{"letter":"ab"}`, http.StatusBadRequest},
		{"bad json", http.MethodPost, "/api/game/" + b.GameID + "/guess", `{`, http.StatusBadRequest},
		{"invalid fixed word", http.MethodPost, "/api/game/new", `{"word":"c++"}`, http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, s, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
			var e map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e["error"] == "" {
				t.Fatalf("error body = %s", rec.Body)
			}
		})
	}
}

func TestAPIFixedWordDisabled(t *testing.T) {
	s := newTestServer(t, "rust")
	s.cfg.Game.AllowFixedWord = false
	rec, _ := doJSON(t, s, http.MethodPost, "/api/game/new", `{"word":"python"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
}

func TestAPIDailyMode(t *testing.T) {
	s := newTestServer(t, "rust")
	var gotMode game.Mode
	s.pickWord = func(m game.Mode) string { gotMode = m; return "daily" }
	rec, b := doJSON(t, s, http.MethodPost, "/api/game/new", `{"mode":"daily"}`)
	if rec.Code != http.StatusCreated || gotMode != game.ModeDaily || len(b.Tiles) != 5 {
		t.Fatalf("status %d mode %q tiles %d", rec.Code, gotMode, len(b.Tiles))
	}
}

func TestAPICatalog(t *testing.T) {
	s := newTestServer(t, "rust")
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	var body struct {
		Languages       []catalog.Language `json:"languages"`
		MaxWrongGuesses int                `json:"maxWrongGuesses"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Languages) != 9 || body.MaxWrongGuesses != 8 || body.Languages[8].Name != "Assembly" {
		t.Fatalf("catalog = %+v", body)
	}
}

// browser replays cookies between form posts like a real client would.
type browser struct {
	t       *testing.T
	s       *Server
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, s *Server) *browser {
	return &browser{t: t, s: s, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.s.Router().ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get() string {
	rec := b.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		b.t.Fatalf("GET /: status %d", rec.Code)
	}
	return rec.Body.String()
}

func (b *browser) post(path string, form url.Values) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.do(req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		b.t.Fatalf("POST %s: status %d location %q", path, rec.Code, rec.Header().Get("Location"))
	}
}

func (b *browser) game() *game.Game {
	b.t.Helper()
	c := b.cookies["endgame_session"]
	if c == nil {
		b.t.Fatal("no session cookie")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	id, err := b.s.sessionGameID(req)
	if err != nil {
		b.t.Fatalf("sessionGameID: %v", err)
	}
	g, err := b.s.store.Get(req.Context(), id)
	if err != nil {
		b.t.Fatalf("store.Get: %v", err)
	}
	return g
}

func TestPageFlow(t *testing.T) {
	s := newTestServer(t, "rust")
	br := newBrowser(t, s)

	page := br.get()
	if !strings.Contains(page, "Assembly: Endgame") || !strings.Contains(page, `aria-label="letter A"`) {
		t.Fatal("index page missing header or keyboard")
	}
	if strings.Contains(page, "New Game") {
		t.Fatal("New Game offered before the game is over")
	}
	first := br.game()

	br.post("/guess", url.Values{"letter": {"Z"}})
	page = br.get()
	if !strings.Contains(page, "game-status farewell") || !strings.Contains(page, "HTML") {
		t.Fatal("farewell banner not rendered after a miss")
	}
	if !strings.Contains(page, "Sorry, the letter z is not in the word. You have 7 attempts left.") {
		t.Fatal("screen reader announcement missing")
	}

	// new game is refused while playing
	br.post("/new", nil)
	if g := br.game(); g.ID != first.ID || g.Guessed != "z" {
		t.Fatalf("game replaced while playing: %+v", g)
	}

	for _, l := range strings.Split("xqwbcdf", "") {
		br.post("/guess", url.Values{"letter": {l}})
	}
	page = br.get()
	if !strings.Contains(page, "Game over!") || !strings.Contains(page, "New Game") {
		t.Fatal("lost screen not rendered")
	}
	if !strings.Contains(page, "missed-letter") {
		t.Fatal("missed letters not marked")
	}

	// guesses after game over are ignored
	br.post("/guess", url.Values{"letter": {"r"}})
	if g := br.game(); strings.ContainsRune(g.Guessed, 'r') {
		t.Fatal("guess accepted after game over")
	}

	br.post("/new", nil)
	next := br.game()
	if next.ID == first.ID || next.Guessed != "" {
		t.Fatalf("new game = %+v", next)
	}
	if _, err := s.store.Get(context.Background(), first.ID); err == nil {
		t.Fatal("finished game not deleted")
	}
}

func TestPageWinShowsConfetti(t *testing.T) {
	s := newTestServer(t, "go")
	br := newBrowser(t, s)
	br.get()
	br.post("/guess", url.Values{"letter": {"g"}})
	br.post("/guess", url.Values{"letter": {"o"}})
	page := br.get()
	if !strings.Contains(page, "You win!") || !strings.Contains(page, `data-pieces="1000"`) || !strings.Contains(page, `data-recycle="false"`) {
		t.Fatal("win screen or confetti missing")
	}
}

func TestTamperedCookieStartsNewGame(t *testing.T) {
	s := newTestServer(t, "rust")
	br := newBrowser(t, s)
	br.cookies["endgame_session"] = &http.Cookie{Name: "endgame_session", Value: "not-a-jwt"}
	br.get()
	if g := br.game(); g.Word != "rust" {
		t.Fatalf("game = %+v", g)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, "rust")
	doJSON(t, s, http.MethodPost, "/api/game/new", `{}`)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Fatalf("health: %d %s", rec.Code, rec.Body)
	}

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `endgame_games_started_total{mode="random"} 1`) {
		t.Fatalf("metrics missing game counter:\n%s", rec.Body)
	}
}

func TestStaticCSS(t *testing.T) {
	s := newTestServer(t, "rust")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".keyboard") {
		t.Fatalf("static: %d", rec.Code)
	}
}
