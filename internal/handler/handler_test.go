package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/web"
)

const testLowQuantity = 3

// testEnv wires the handlers into a router the same way the server does,
// backed by in-memory repositories.
type testEnv struct {
	users     *auth.FakeUserRepository
	sessions  *auth.FakeSessionRepository
	items     *inventory.FakeItemRepository
	auth      auth.Service
	inventory inventory.Service
	router    chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	users := auth.NewFakeUserRepository()
	sessions := auth.NewFakeSessionRepository()
	items := inventory.NewFakeItemRepository()
	categories := inventory.NewFakeCategoryRepository()

	authService := auth.NewService(users, sessions, time.Hour, false)
	inventoryService := inventory.NewService(items, categories, testLowQuantity)

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.LoadUser(authService))

		r.Get("/", HandleIndex(renderer))
		r.Get("/signup", HandleSignupPage(renderer))
		r.Post("/signup", HandleSignup(authService, renderer))
		r.Get("/login", HandleLoginPage(renderer))
		r.Post("/login", HandleLogin(authService, renderer))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(authService))

		r.Get("/dashboard", HandleDashboard(inventoryService, renderer))
		r.Post("/logout", HandleLogout(authService))

		r.Route("/items", func(r chi.Router) {
			r.Get("/add", HandleAddItemPage(inventoryService, renderer))
			r.Post("/add", HandleAddItem(inventoryService, categories, renderer))
			r.Get("/filter", HandleItemFilter(inventoryService, renderer))

			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/edit", HandleEditItemPage(inventoryService, renderer))
				r.Post("/edit", HandleEditItem(inventoryService, categories, renderer))
				r.Get("/delete", HandleDeleteItemPage(inventoryService, renderer))
				r.Post("/delete", HandleDeleteItem(inventoryService))
			})
		})
	})

	return &testEnv{
		users:     users,
		sessions:  sessions,
		items:     items,
		auth:      authService,
		inventory: inventoryService,
		router:    r,
	}
}

// loginAs registers a user and returns the user with its session cookie.
func (e *testEnv) loginAs(t *testing.T, username string) (*domain.User, *http.Cookie) {
	t.Helper()

	ctx := context.Background()
	user, err := e.auth.Register(ctx, username, "swordfish123")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, e.auth.Login(ctx, rec, user))

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return user, c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil, nil
}

// seedItem creates an item owned by the given user.
func (e *testEnv) seedItem(t *testing.T, userID int64, name string, quantity int) domain.InventoryItem {
	t.Helper()

	item := domain.InventoryItem{Name: name, Quantity: quantity, CategoryID: 1, UserID: userID}
	require.NoError(t, e.items.CreateItem(context.Background(), &item))
	return item
}

func (e *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestSignup_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postForm("/signup", url.Values{
		"username":  {"alice"},
		"password1": {"swordfish123"},
		"password2": {"swordfish123"},
	}, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, env.users.Count())
	assert.Equal(t, 1, env.sessions.Count())

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "signup should log the user in")
	assert.True(t, sessionCookie.HttpOnly)
}

func TestSignup_PasswordMismatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.postForm("/signup", url.Values{
		"username":  {"alice"},
		"password1": {"swordfish123"},
		"password2": {"different456"},
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match")
	// Submitted username survives the re-render
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Equal(t, 0, env.users.Count(), "no account on validation failure")
}

func TestSignup_UsernameTaken(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "alice")

	rec := env.postForm("/signup", url.Values{
		"username":  {"alice"},
		"password1": {"swordfish123"},
		"password2": {"swordfish123"},
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "That username is taken")
	assert.Equal(t, 1, env.users.Count())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.loginAs(t, "alice")

	t.Run("success redirects to dashboard", func(t *testing.T) {
		rec := env.postForm("/login", url.Values{
			"username": {"alice"},
			"password": {"swordfish123"},
		}, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("wrong password re-renders", func(t *testing.T) {
		rec := env.postForm("/login", url.Values{
			"username": {"alice"},
			"password": {"wrong-password"},
		}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		rec := env.postForm("/login", url.Values{
			"username": {"mallory"},
			"password": {"swordfish123"},
		}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	})

	t.Run("next parameter is honored for local paths", func(t *testing.T) {
		rec := env.postForm("/login?next=%2Fitems%2Fadd", url.Values{
			"username": {"alice"},
			"password": {"swordfish123"},
		}, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/items/add", rec.Header().Get("Location"))
	})

	t.Run("external next target is rejected", func(t *testing.T) {
		rec := env.postForm("/login?next=%2F%2Fevil.example", url.Values{
			"username": {"alice"},
			"password": {"swordfish123"},
		}, nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.loginAs(t, "alice")

	rec := env.postForm("/logout", nil, cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 0, env.sessions.Count())
}

func TestDashboard_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/dashboard", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard", rec.Header().Get("Location"))
}

func TestDashboard_LowStockWarning(t *testing.T) {
	tests := []struct {
		name       string
		quantities []int
		want       string
		absent     string
	}{
		{
			name:       "no low stock",
			quantities: []int{4, 10},
			absent:     "low inventory",
		},
		{
			name:       "single low item",
			quantities: []int{3, 10},
			want:       "1 item has low inventory",
		},
		{
			name:       "multiple low items",
			quantities: []int{0, 2, 10},
			want:       "2 items have low inventory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			user, cookie := env.loginAs(t, "alice")
			for _, q := range tt.quantities {
				env.seedItem(t, user.ID, "Item", q)
			}

			rec := env.get("/dashboard", cookie)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.want != "" {
				assert.Contains(t, rec.Body.String(), tt.want)
			}
			if tt.absent != "" {
				assert.NotContains(t, rec.Body.String(), tt.absent)
			}
		})
	}
}

func TestDashboard_ShowsOnlyOwnItems(t *testing.T) {
	env := newTestEnv(t)
	alice, cookie := env.loginAs(t, "alice")
	bob, _ := env.loginAs(t, "bob")

	env.seedItem(t, alice.ID, "Alice thing", 5)
	env.seedItem(t, bob.ID, "Bob thing", 5)

	rec := env.get("/dashboard", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice thing")
	assert.NotContains(t, rec.Body.String(), "Bob thing")
}

func TestAddItem(t *testing.T) {
	env := newTestEnv(t)
	user, cookie := env.loginAs(t, "alice")

	t.Run("valid submission creates an owned item", func(t *testing.T) {
		rec := env.postForm("/items/add", url.Values{
			"name":        {"Stapler"},
			"quantity":    {"7"},
			"category_id": {"1"},
			// A spoofed owner field must be ignored
			"user_id": {"999"},
		}, cookie)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		items, err := env.items.ListItemsByUser(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Stapler", items[0].Name)
		assert.Equal(t, 7, items[0].Quantity)
		assert.Equal(t, user.ID, items[0].UserID)
	})

	t.Run("negative quantity re-renders with the value preserved", func(t *testing.T) {
		rec := env.postForm("/items/add", url.Values{
			"name":        {"Broken"},
			"quantity":    {"-1"},
			"category_id": {"1"},
		}, cookie)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Broken")
		assert.Contains(t, rec.Body.String(), "-1")

		items, err := env.items.ListItemsByUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1, "invalid submission must not create an item")
	})

	t.Run("non-numeric quantity is rejected", func(t *testing.T) {
		rec := env.postForm("/items/add", url.Values{
			"name":        {"Fuzzy"},
			"quantity":    {"many"},
			"category_id": {"1"},
		}, cookie)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Enter a whole number")
	})

	t.Run("anonymous request is redirected to login", func(t *testing.T) {
		rec := env.postForm("/items/add", url.Values{
			"name":        {"Sneaky"},
			"quantity":    {"1"},
			"category_id": {"1"},
		}, nil)

		assert.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestEditItem(t *testing.T) {
	env := newTestEnv(t)
	alice, cookie := env.loginAs(t, "alice")
	bob, _ := env.loginAs(t, "bob")

	mine := env.seedItem(t, alice.ID, "Mine", 5)
	theirs := env.seedItem(t, bob.ID, "Theirs", 5)

	t.Run("edit form is pre-populated", func(t *testing.T) {
		rec := env.get("/items/"+itoa(mine.ID)+"/edit", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Mine")
	})

	t.Run("valid edit updates all fields", func(t *testing.T) {
		rec := env.postForm("/items/"+itoa(mine.ID)+"/edit", url.Values{
			"name":        {"Renamed"},
			"quantity":    {"2"},
			"category_id": {"2"},
		}, cookie)

		assert.Equal(t, http.StatusSeeOther, rec.Code)

		got, err := env.items.GetItemByID(context.Background(), mine.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 2, got.Quantity)
		assert.Equal(t, int64(2), got.CategoryID)
		assert.Equal(t, alice.ID, got.UserID, "owner must never change")
	})

	t.Run("another user's item is a 404", func(t *testing.T) {
		rec := env.postForm("/items/"+itoa(theirs.ID)+"/edit", url.Values{
			"name":        {"Hijacked"},
			"quantity":    {"1"},
			"category_id": {"1"},
		}, cookie)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		got, err := env.items.GetItemByID(context.Background(), theirs.ID)
		require.NoError(t, err)
		assert.Equal(t, "Theirs", got.Name)
	})

	t.Run("missing item is a 404", func(t *testing.T) {
		rec := env.get("/items/99999/edit", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("garbage id is a 404", func(t *testing.T) {
		rec := env.get("/items/not-a-number/edit", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteItem(t *testing.T) {
	env := newTestEnv(t)
	alice, cookie := env.loginAs(t, "alice")
	bob, _ := env.loginAs(t, "bob")

	mine := env.seedItem(t, alice.ID, "Mine", 5)
	theirs := env.seedItem(t, bob.ID, "Theirs", 5)

	t.Run("confirmation page shows the item", func(t *testing.T) {
		rec := env.get("/items/"+itoa(mine.ID)+"/delete", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Mine")
	})

	t.Run("delete removes the item permanently", func(t *testing.T) {
		rec := env.postForm("/items/"+itoa(mine.ID)+"/delete", nil, cookie)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		_, err := env.items.GetItemByID(context.Background(), mine.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("another user's item is a 404", func(t *testing.T) {
		rec := env.postForm("/items/"+itoa(theirs.ID)+"/delete", nil, cookie)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		_, err := env.items.GetItemByID(context.Background(), theirs.ID)
		assert.NoError(t, err)
	})
}

func TestItemFilter(t *testing.T) {
	env := newTestEnv(t)
	alice, cookie := env.loginAs(t, "alice")
	bob, _ := env.loginAs(t, "bob")

	env.seedItem(t, alice.ID, "Widget", 5)
	env.seedItem(t, alice.ID, "widget mini", 1)
	env.seedItem(t, alice.ID, "Gadget", 7)
	env.seedItem(t, bob.ID, "Widget deluxe", 5)

	t.Run("substring match is case-insensitive and owner-scoped", func(t *testing.T) {
		rec := env.get("/items/filter?name=WIDG", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Widget")
		assert.Contains(t, body, "widget mini")
		assert.NotContains(t, body, "Gadget")
		assert.NotContains(t, body, "Widget deluxe")
	})

	t.Run("empty name returns everything", func(t *testing.T) {
		rec := env.get("/items/filter", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Widget")
		assert.Contains(t, body, "Gadget")
	})

	t.Run("no low inventory warning on filter results", func(t *testing.T) {
		// "widget mini" has quantity 1, below the threshold
		rec := env.get("/items/filter?name=mini", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "low inventory")
	})
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t)

	t.Run("anonymous", func(t *testing.T) {
		rec := env.get("/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logged in shows username", func(t *testing.T) {
		_, cookie := env.loginAs(t, "alice")
		rec := env.get("/", cookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
	})
}

func TestFlashMessageRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.loginAs(t, "alice")

	rec := env.postForm("/items/add", url.Values{
		"name":        {"Stapler"},
		"quantity":    {"7"},
		"category_id": {"1"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.FlashCookieName {
			flash = c
		}
	}
	require.NotNil(t, flash, "redirect should carry a flash cookie")

	// Follow the redirect with both cookies
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	req.AddCookie(flash)
	rec2 := httptest.NewRecorder()
	env.router.ServeHTTP(rec2, req)

	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "Item added")

	// The flash cookie is expired on the response
	for _, c := range rec2.Result().Cookies() {
		if c.Name == auth.FlashCookieName {
			assert.Less(t, c.MaxAge, 0, "flash cookie should be cleared after display")
		}
	}
}

func TestDashboard_FlashAndLowStockWarningTogether(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.loginAs(t, "alice")

	// Adding a low-quantity item queues a flash and makes the warning fire
	rec := env.postForm("/items/add", url.Values{
		"name":        {"Glue"},
		"quantity":    {"1"},
		"category_id": {"1"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.FlashCookieName {
			flash = c
		}
	}
	require.NotNil(t, flash)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	req.AddCookie(flash)
	rec2 := httptest.NewRecorder()
	env.router.ServeHTTP(rec2, req)

	require.Equal(t, http.StatusOK, rec2.Code)
	body := rec2.Body.String()
	assert.Contains(t, body, "Item added", "warning must not displace the flash")
	assert.Contains(t, body, "1 item has low inventory")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
