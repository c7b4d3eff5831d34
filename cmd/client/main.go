package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth-client/auth"
	"github.com/jrsteele09/go-oauth-client/callback"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/oauthmodel"
	"github.com/jrsteele09/go-oauth-client/token"
)

const (
	callbackPath = "/callback"

	stepAuthorize = "AUTHORIZE"
	stepCallback  = "CALLBACK"
	stepExchange  = "EXCHANGE"
	stepInspect   = "INSPECT"
	stepFetch     = "FETCH"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running client: %s\n", err)
	}
	log.Printf("Client stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return err
	}
	displayAppname(c.GetAppName())

	client, err := auth.NewClient(oauthmodel.ClientConfig{
		ClientID:         c.GetClientID(),
		ClientSecret:     c.GetClientSecret(),
		AuthorizationURL: c.GetAuthorizationURL(),
		TokenURL:         c.GetTokenURL(),
	}, auth.WithTimeout(c.GetRequestTimeout()))
	if err != nil {
		return err
	}

	// Register the pending flow before handing out the authorization URL
	store := callback.NewStore()
	state := callback.NewState()
	redirectURI := fmt.Sprintf("http://%s%s", c.GetCallbackAddr(), callbackPath)
	if err := store.Begin(callback.Flow{
		State:       state,
		RedirectURI: redirectURI,
		Scope:       strings.Join(c.GetScopes(), " "),
	}); err != nil {
		return err
	}

	redirects := make(chan callback.Result, 1)
	mux := http.NewServeMux()
	mux.Handle(callbackPath, callback.Handler(store, func(result callback.Result, _ callback.Flow) {
		redirects <- result
	}))

	server := &http.Server{Addr: c.GetCallbackAddr(), Handler: mux}
	go listenAndServe(server)

	authorizationURL, err := client.AuthorizationURL(oauth2.Params{
		oauth2.KeyRedirectURI: redirectURI,
		oauth2.KeyScope:       c.GetScopes(),
		oauth2.KeyState:       state,
	})
	if err != nil {
		return err
	}

	logStep(stepAuthorize, "Open this URL in your browser:")
	fmt.Printf("\n  %s\n\n", authorizationURL)

	result, err := waitForRedirect(redirects)
	if err != nil {
		return errors.Join(err, shutdown(server))
	}
	logStep(stepCallback, "Redirect received")

	if result.Denied() {
		return errors.Join(
			fmt.Errorf("authorization denied: %s - %s", result.Error, result.ErrorDescription),
			shutdown(server),
		)
	}

	logStep(stepExchange, "Exchanging the authorization code for tokens")
	exchanges, err := client.ExchangeAuthorizationCode(result.Code, redirectURI)
	if err != nil {
		return errors.Join(err, shutdown(server))
	}
	exchange := <-exchanges
	if !exchange.Succeeded() {
		if exchange.Err != nil {
			return errors.Join(exchange.Err, shutdown(server))
		}
		return errors.Join(
			fmt.Errorf("token endpoint answered %d", exchange.StatusCode),
			shutdown(server),
		)
	}

	accessToken := utils.Value(exchange.Token.AccessToken)
	displayToken(exchange, accessToken)

	if c.GetUserInfoURL() != "" {
		if err := fetchUserInfo(client, c.GetUserInfoURL(), accessToken); err != nil {
			return errors.Join(err, shutdown(server))
		}
	}

	return shutdown(server)
}

func displayToken(exchange auth.ExchangeResult, accessToken string) {
	logStep(stepInspect, "Access token received")
	fmt.Printf("  token_type: %s expires_in: %ds scope: %q\n",
		exchange.Token.TokenType, exchange.Token.ExpiresIn, exchange.Token.Scope)

	// Opaque (non JWT) access tokens introspect with an error, which is fine
	introspection, err := token.NewInspector().Introspect(accessToken)
	if err != nil {
		fmt.Printf("  token is opaque: %v\n", err)
		return
	}
	fmt.Printf("  active: %t subject: %s issuer: %s roles: %v\n",
		introspection.Active,
		utils.Value(introspection.Sub),
		utils.Value(introspection.Iss),
		introspection.Roles)
}

func fetchUserInfo(client *auth.Client, userInfoURL, accessToken string) error {
	logStep(stepFetch, "Fetching "+userInfoURL)
	fetches, err := client.FetchResource(userInfoURL, accessToken)
	if err != nil {
		return err
	}
	fetch := <-fetches
	if !fetch.Succeeded() {
		if fetch.Err != nil {
			return fetch.Err
		}
		return fmt.Errorf("resource server answered %d", fetch.StatusCode)
	}
	for key, value := range fetch.Payload {
		fmt.Printf("  %s: %v\n", key, value)
	}
	return nil
}

func listenAndServe(server *http.Server) error {
	log.Printf("Callback listener on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

// waitForRedirect blocks until the browser redirect lands on the callback
// listener, or the process is interrupted.
func waitForRedirect(redirects <-chan callback.Result) (callback.Result, error) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case result := <-redirects:
		return result, nil
	case <-stop:
		return callback.Result{}, errors.New("interrupted before the redirect arrived")
	}
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
