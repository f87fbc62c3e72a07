package auth

import "context"

type Gateway interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
}
