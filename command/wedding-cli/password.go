// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/keypair"
)

const minimumPasswordLength = 8

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, fd, oldState, nil
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		terminal.Restore(fd, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tty, "wedding-cli: ")

	return passwordConsole, fd, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// prompt twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if err := checkPasswordLength(password); nil != err {
		return "", err
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

func checkPasswordLength(password string) error {
	if len(password) < minimumPasswordLength {
		return ErrInvalidPasswordLength
	}
	return nil
}

// the global password flag overrides the prompt
func newPassword(flagPassword string) (string, error) {
	if "" != flagPassword {
		return flagPassword, checkPasswordLength(flagPassword)
	}
	return promptNewPassword()
}

// decrypt an identity, prompting only when no password flag was given
func promptAndCheckPassword(config *configuration.Configuration, flagPassword string, name string) (*keypair.KeyPair, error) {
	password := flagPassword
	if "" == password {
		p, err := readPassword("password: ")
		if nil != err {
			return nil, err
		}
		password = p
	}

	keyPair, err := config.KeyPair(password, name)
	if nil != err {
		return nil, err
	}
	if nil == keyPair {
		return nil, ErrNilKeyPair
	}
	return keyPair, nil
}
