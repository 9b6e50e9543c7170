package cli

import (
	"context"
	"os"

	"github.com/pvukovic/mailpilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. Registration never logs the user in; on success the user is
// told to log in next.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, password); err != nil {
		printlnFn(friendlyError(err))
		return err
	}

	printlnFn("Registered! Now log in with your new account.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the credential is persisted and protected views become reachable.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn(friendlyError(err))
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Logout drops the persisted credential. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn(friendlyError(err))
		return err
	}
	printlnFn("Logged out.")
	return nil
}
