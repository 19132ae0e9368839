package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// CallbackPath is where the identity provider sends the browser back to.
const CallbackPath = "/auth/callback"

// The session id arrives in the URL fragment, which browsers never send to a
// server, so the page posts location.hash back to us.
const callbackPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>NeuroAd</title>
<style>body{font-family:system-ui,sans-serif;display:flex;align-items:center;justify-content:center;height:100vh;margin:0}</style>
</head>
<body>
<p id="msg" dir="rtl">جاري تسجيل الدخول...</p>
<script>
fetch("` + CallbackPath + `/fragment", {method: "POST", headers: {"Content-Type": "text/plain"}, body: window.location.hash})
  .then(function (r) { return r.text(); })
  .then(function (t) { document.getElementById("msg").textContent = t; history.replaceState(null, "", window.location.pathname); })
  .catch(function () { document.getElementById("msg").textContent = "Login failed. Return to the terminal."; });
</script>
</body>
</html>`

var ErrCallbackClosed = errors.New("callback server closed")

// CallbackServer receives the login return on a loopback port.
type CallbackServer struct {
	app       *fiber.App
	ln        net.Listener
	fragments chan string
	once      sync.Once
}

// StartCallbackServer listens on addr ("127.0.0.1:0" picks a free port).
func StartCallbackServer(addr string) (*CallbackServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for login callback: %w", err)
	}

	s := &CallbackServer{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			AppName:               "neuroad-login",
		}),
		ln:        ln,
		fragments: make(chan string, 1),
	}

	s.app.Get(CallbackPath, func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(callbackPage)
	})

	s.app.Post(CallbackPath+"/fragment", func(c *fiber.Ctx) error {
		fragment := string(c.Body())
		if _, ok := ExtractSessionID(fragment); !ok {
			return c.Status(fiber.StatusBadRequest).SendString("No session found. Return to the terminal and try again.")
		}
		select {
		case s.fragments <- fragment:
		default:
		}
		return c.SendString("Signed in. You can close this tab and return to the terminal.")
	})

	go s.app.Listener(ln)

	return s, nil
}

// ReturnURL is the URL to hand to the identity provider.
func (s *CallbackServer) ReturnURL() string {
	return "http://" + s.ln.Addr().String() + CallbackPath
}

// Wait blocks until the browser posts a fragment containing a session id.
func (s *CallbackServer) Wait(ctx context.Context) (string, error) {
	select {
	case f, ok := <-s.fragments:
		if !ok {
			return "", ErrCallbackClosed
		}
		return f, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the server.
func (s *CallbackServer) Close() error {
	var err error
	s.once.Do(func() {
		err = s.app.Shutdown()
	})
	return err
}
