package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider verifies Firebase ID tokens and manages provider accounts
// through the Admin SDK.
type FirebaseProvider struct {
	client *fbauth.Client
}

func NewFirebaseProvider(ctx context.Context, credentialsPath, projectID string) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (*Claims, error) {
	tok, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		if fbauth.IsIDTokenInvalid(err) {
			// Not a Firebase token (or unparseable as one); let the caller
			// try the locally issued format.
			return nil, ErrForeignToken
		}
		return nil, err
	}
	c := &Claims{Subject: tok.UID}
	if v, ok := tok.Claims["email"].(string); ok {
		c.Email = v
	}
	if v, ok := tok.Claims["name"].(string); ok {
		c.Name = v
	}
	return c, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, name string) (*Claims, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	if name != "" {
		params = params.DisplayName(name)
	}
	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create provider user: %w", err)
	}
	return &Claims{Subject: rec.UID, Email: rec.Email, Name: rec.DisplayName}, nil
}
