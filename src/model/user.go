package model

import (
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found, expired, or blocked")
)

type User struct {
	ID                              int        `json:"id"`
	Username                        string     `json:"username"`
	Email                           string     `json:"email"`
	Password                        string     `json:"-"`
	AuthProvider                    string     `json:"auth_provider"`
	IsEmailVerified                 bool       `json:"is_email_verified"`
	EmailVerificationToken          sql.NullString `json:"-"`
	EmailVerificationTokenExpiresAt sql.NullTime   `json:"-"`
	CreatedAt                       time.Time  `json:"created_at"`
	UpdatedAt                       time.Time  `json:"updated_at"`
}

type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	UserAgent    string    `json:"user_agent"`
	ClientIP     string    `json:"client_ip"`
	IsBlocked    bool      `json:"is_blocked"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// HashPassword hashes the user's password using bcrypt.
func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a given password with the user's hashed password.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// CreateUser inserts a new user into the database.
func (u *User) CreateUser(db *sql.DB) error {
	query := `
	INSERT INTO users (username, password, email, auth_provider, is_email_verified, email_verification_token, email_verification_token_expires_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := db.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if u.AuthProvider == "" {
		u.AuthProvider = "local"
	}

	res, err := stmt.Exec(
		u.Username,
		u.Password,
		u.Email,
		u.AuthProvider,
		u.IsEmailVerified,
		u.EmailVerificationToken,
		u.EmailVerificationTokenExpiresAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = int(id)
	return nil
}

const userSelectColumns = `id, username, password, email, auth_provider, is_email_verified, email_verification_token, email_verification_token_expires_at, created_at, updated_at`

func scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.AuthProvider,
		&user.IsEmailVerified,
		&user.EmailVerificationToken,
		&user.EmailVerificationTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user from the database by their username.
func GetUserByUsername(db *sql.DB, username string) (*User, error) {
	row := db.QueryRow(`SELECT `+userSelectColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// GetUserByEmail retrieves a user from the database by their email address.
func GetUserByEmail(db *sql.DB, email string) (*User, error) {
	row := db.QueryRow(`SELECT `+userSelectColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUserByID retrieves a user from the database by their numeric ID.
func GetUserByID(db *sql.DB, id int64) (*User, error) {
	row := db.QueryRow(`SELECT `+userSelectColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByVerificationToken retrieves a user holding the given unexpired
// email verification token.
func GetUserByVerificationToken(db *sql.DB, token string) (*User, error) {
	row := db.QueryRow(
		`SELECT `+userSelectColumns+` FROM users WHERE email_verification_token = ? AND email_verification_token_expires_at > ?`,
		token, time.Now(),
	)
	return scanUser(row)
}

// MarkEmailVerified flags the user as verified and clears the token.
func (u *User) MarkEmailVerified(db *sql.DB) error {
	query := `
	UPDATE users
	SET is_email_verified = TRUE,
	    email_verification_token = NULL,
	    email_verification_token_expires_at = NULL,
	    updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`
	_, err := db.Exec(query, u.ID)
	if err == nil {
		u.IsEmailVerified = true
		u.EmailVerificationToken = sql.NullString{}
		u.EmailVerificationTokenExpiresAt = sql.NullTime{}
	}
	return err
}

// CreateSession inserts a new session into the database.
func CreateSession(db *sql.DB, session *Session) error {
	query := `
	INSERT INTO sessions (user_id, token, refresh_token, user_agent, client_ip, is_blocked, expires_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := db.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	session.CreatedAt = time.Now()
	_, err = stmt.Exec(
		session.UserID,
		session.Token,
		session.RefreshToken,
		session.UserAgent,
		session.ClientIP,
		session.IsBlocked,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// GetSessionByToken retrieves an active, non-blocked session by its access token.
func GetSessionByToken(db *sql.DB, token string) (*Session, error) {
	query := `
	SELECT id, user_id, token, refresh_token, user_agent, client_ip, is_blocked, expires_at, created_at
	FROM sessions
	WHERE token = ? AND is_blocked = FALSE AND expires_at > ?`

	row := db.QueryRow(query, token, time.Now())
	var session Session
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.RefreshToken,
		&session.UserAgent,
		&session.ClientIP,
		&session.IsBlocked,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetSessionByRefreshToken retrieves an active, non-blocked session by its
// refresh token.
func GetSessionByRefreshToken(db *sql.DB, refreshToken string) (*Session, error) {
	query := `
	SELECT id, user_id, token, refresh_token, user_agent, client_ip, is_blocked, expires_at, created_at
	FROM sessions
	WHERE refresh_token = ? AND is_blocked = FALSE AND expires_at > ?`

	row := db.QueryRow(query, refreshToken, time.Now())
	var session Session
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.RefreshToken,
		&session.UserAgent,
		&session.ClientIP,
		&session.IsBlocked,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// UpdateSessionTokens replaces the access token on an existing session after
// a refresh.
func UpdateSessionTokens(db *sql.DB, sessionID int, newToken string) error {
	_, err := db.Exec(`UPDATE sessions SET token = ? WHERE id = ?`, newToken, sessionID)
	return err
}

// DeleteSessionByToken removes a session from the database based on the access token.
func DeleteSessionByToken(db *sql.DB, token string) error {
	query := `DELETE FROM sessions WHERE token = ?`
	stmt, err := db.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	// A zero rows-affected result is fine here: the session may already have
	// expired, and logout should still succeed.
	_, err = stmt.Exec(token)
	return err
}
