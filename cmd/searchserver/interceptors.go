package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"github.com/justinas/alice"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/internal/auth"
)

// NewAuthInterceptor is a connectrpc interceptor that uses a JWT. Requests
// without an Authorization header go through anonymously.
func NewAuthInterceptor(secretKey []byte) connect.UnaryInterceptorFunc {
	interceptor := func(next connect.UnaryFunc) connect.UnaryFunc {
		return connect.UnaryFunc(func(
			ctx context.Context,
			req connect.AnyRequest,
		) (connect.AnyResponse, error) {

			if req.Header().Get("Authorization") == "" {
				return next(ctx, req)
			}
			return jwtInterceptor(ctx, secretKey, req, next)
		})
	}
	return connect.UnaryInterceptorFunc(interceptor)
}

func jwtInterceptor(ctx context.Context, secretKey []byte, req connect.AnyRequest, next connect.UnaryFunc) (
	connect.AnyResponse, error) {

	ctx, err := authenticateJWT(ctx, req.Header(), secretKey)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}
	return next(ctx, req)
}

func authenticateJWT(ctx context.Context, reqHeader http.Header, secretKey []byte) (context.Context, error) {
	authHeader := reqHeader.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("no auth method")
	}

	userToken := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(userToken, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		log.Err(err).Msg("err-parsing-token")
		return nil, errors.New("could not parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("could not parse token claims")
	}
	uidStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("could not parse uid claim")
	}
	uid, err := strconv.Atoi(uidStr)
	if err != nil {
		return nil, errors.New("could not parse uid as an integer")
	}
	usn, ok := claims["usn"].(string)
	if !ok || usn == "" {
		return nil, errors.New("unexpected usn claim")
	}
	// a token without a membership claim is a regular user
	mbr, _ := claims["mbr"].(bool)

	return auth.StoreUserInContext(ctx, uid, usn, mbr), nil
}

// authMiddleware does for the plain JSON routes what NewAuthInterceptor
// does for the RPC service.
func authMiddleware(secretKey []byte) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx, err := authenticateJWT(r.Context(), r.Header, secretKey)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
