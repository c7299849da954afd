package handler

import (
	"context"

	"app/internal/model"
	"app/internal/service"
)

// Function-backed stubs for the service interfaces.

type stubUserService struct {
	signupFn  func(ctx context.Context, email, password string) (*model.User, string, error)
	loginFn   func(ctx context.Context, email, password string) (*model.User, string, error)
	getFn     func(ctx context.Context, id string) (*model.User, error)
	premiumFn func(ctx context.Context, id string) (*model.User, error)
}

func (s *stubUserService) Signup(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.signupFn(ctx, email, password)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) ActivatePremium(ctx context.Context, id string) (*model.User, error) {
	return s.premiumFn(ctx, id)
}

type stubConvertService struct {
	convertFn func(ctx context.Context, userID, text string, useGreekOX bool) (*service.ConvertResult, error)
}

func (s *stubConvertService) Convert(ctx context.Context, userID, text string, useGreekOX bool) (*service.ConvertResult, error) {
	return s.convertFn(ctx, userID, text, useGreekOX)
}
