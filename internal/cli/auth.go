package cli

import (
	"context"
	"errors"
	"os"

	"github.com/docbotdev/docbot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password (with confirmation) and
// attempts to create a new account. The account is not logged in
// automatically. Password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("New password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.sessions.SignUp(ctx, a.session, username, string(password), string(confirm))
	switch {
	case err == nil:
		printlnFn("Account created successfully! You can now login.")
	case errors.Is(err, common.ErrorPasswordMismatch):
		printlnFn("Passwords do not match.")
	case errors.Is(err, common.ErrorPasswordTooShort):
		printlnFn("Password must be at least 6 characters long.")
	case errors.Is(err, common.ErrorInvalidUsernameFormat):
		printlnFn("Username cannot be empty.")
	case errors.Is(err, common.ErrorDuplicateUser):
		printlnFn("Username already exists. Please choose a different one.")
	case errors.Is(err, common.ErrorAlreadyAuthenticated):
		printlnFn("You are already logged in. Logout first to create another account.")
	default:
		printlnFn("An error occurred during sign up. Please try again.")
	}
	return err
}

// Login prompts for credentials and tries to authenticate the session. A
// bad username and a bad password produce the same message.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.sessions.Login(ctx, a.session, username, string(password))
	switch {
	case err == nil:
		printlnFn("Welcome back, " + a.session.Username() + "!")
	case errors.Is(err, common.ErrorInvalidCredentials):
		printlnFn("Invalid username or password.")
	default:
		printlnFn("Login is unavailable right now. Please try again.")
	}
	return err
}

// Logout returns the session to the anonymous state.
func (a *App) Logout(ctx context.Context) {
	a.sessions.Logout(ctx, a.session)
	printlnFn("Logged out.")
}
