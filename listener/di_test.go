package listener

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/0xalexb/sitecfg/config"
	yamlparser "github.com/0xalexb/sitecfg/config/parser/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func namedHandler(name string, handler http.Handler) fx.Option {
	return fx.Supply(fx.Annotate(handler, fx.As(new(http.Handler)), fx.ResultTags(`name:"`+name+`"`)))
}

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	addr := freePort(t)

	app := fxtest.New(t,
		namedHandler("site", configHandler()),
		NewModule("site", WithAddress(addr)),
	)

	app.RequireStart()

	status, body := fetch(t, addr)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"title":"Style Dictionary"}`, body)

	app.RequireStop()
	assertClosed(t, addr)
}

func TestNewModule_ConfigFromProvider(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	data := staticFetcher("listeners:\n  admin:\n    address: " + addr + "\n")

	app := fxtest.New(t,
		namedHandler("admin", textHandler("ok")),
		fx.Provide(fx.Annotate(
			func() (Config, error) {
				cfg, err := config.Provider(&Config{}, "listeners:admin")(yamlparser.NewParser(), data)
				if err != nil {
					return Config{}, err
				}

				return *cfg, nil
			},
			fx.ResultTags(`name:"admin"`),
		)),
		NewModule("admin"),
	)

	app.RequireStart()

	status, body := fetch(t, addr)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)

	app.RequireStop()
}

func TestNewModule_TwoListeners(t *testing.T) {
	t.Parallel()

	siteAddr := freePort(t)
	adminAddr := freePort(t)

	app := fxtest.New(t,
		namedHandler("site", textHandler("site")),
		namedHandler("admin", textHandler("admin")),
		NewModule("site", WithAddress(siteAddr)),
		NewModule("admin", WithAddress(adminAddr)),
	)

	app.RequireStart()

	_, body := fetch(t, siteAddr)
	assert.Equal(t, "site", body)

	_, body = fetch(t, adminAddr)
	assert.Equal(t, "admin", body)

	app.RequireStop()
}

func TestNewModule_ListenFailure(t *testing.T) {
	t.Parallel()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	app := fx.New(
		namedHandler("site", configHandler()),
		NewModule("site", WithAddress(ln.Addr().String())),
		fx.NopLogger,
	)

	err = app.Start(context.Background())
	require.ErrorIs(t, err, ErrListenFailed, "should fail when port is already in use")
}

func TestNewModule_InvalidConfig(t *testing.T) {
	t.Parallel()

	app := fx.New(
		namedHandler("site", configHandler()),
		NewModule("site", WithAddress("no-port")),
		fx.NopLogger,
	)

	require.ErrorIs(t, app.Err(), ErrInvalidAddress)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		namedHandler("", configHandler()),
		NewModule(""),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err, "should fail with empty name")
	assert.ErrorIs(t, err, ErrEmptyName)
}
