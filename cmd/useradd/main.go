// Command useradd creates a user account from the terminal. It is meant
// for bootstrapping the first account before the HTTP API is reachable.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/infra/auth"
	"passport/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/term"
	"gorm.io/gorm"
)

const createTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "useradd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	defer closeDB(db)

	reader := bufio.NewReader(os.Stdin)

	username, err := prompt(reader, "Username: ")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email: ")
	if err != nil {
		return err
	}
	fullName, err := prompt(reader, "Full name (optional): ")
	if err != nil {
		return err
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewPBKDF2Hasher(cfg)
	if err := hasher.ValidatePasswordStrength(password); err != nil {
		return err
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Active:       true,
	}

	ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
	defer cancel()

	if err := postgres.NewUserRepository(db).Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	fmt.Printf("Created user %s (%s)\n", user.Username, user.ID)

	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "failed to read password confirmation")
	}

	if string(password) != string(confirm) {
		return "", errors.New("passwords do not match")
	}

	return string(password), nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
