package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// credentials prompts for a username and password. The password is
// returned as a string because it goes straight into a JSON body; the raw
// bytes read from the terminal are wiped.
func (a *App) credentials() (string, string, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}

	pw, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer clear(pw)

	return userName, string(pw), nil
}

// Register prompts for credentials and creates an account. It does not log
// the user in.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, userName, password); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "User registered successfully")
	return nil
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, userName, password); err != nil {
		return a.report(err)
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

// Logout drops the session token. Tokens cannot be revoked server-side, so
// this only forgets it locally.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
