// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the attestation pipeline over HTTP so other hosts on
// a trusted network can request or check location proofs.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/locproof/locproof/attest"
	"github.com/locproof/locproof/geohash"
	"github.com/locproof/locproof/location"
)

// Server answers verification requests and, when a signing key is held,
// attestation requests. The key stays in process memory; it never appears in
// a response or a log line.
type Server struct {
	attestor *attest.Attestor
	key      attest.Key
	hasKey   bool
}

// New creates a Server that only verifies claims.
func New(provider location.Provider) *Server {
	return &Server{attestor: &attest.Attestor{Provider: provider}}
}

// NewSigning creates a Server that also signs attestations with key.
func NewSigning(provider location.Provider, key attest.Key) *Server {
	s := New(provider)
	s.key = key
	s.hasKey = true

	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.health)
	r.POST("/api/verify", s.verify)
	r.POST("/api/attest", s.createAttestation)

	return r
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "signing": s.hasKey})
}

// verifyRequest is a claim to check: the geohash, the signer's public key in
// hex, and the signature either as hex or as the JSON byte-array form emitted
// by the run command.
type verifyRequest struct {
	Geohash   string         `json:"geohash" binding:"required"`
	PublicKey string         `json:"public_key" binding:"required"`
	Signature signatureField `json:"signature"`
}

func (s *Server) verify(ctx *gin.Context) {
	var req verifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if !req.Signature.set {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signature is required"})

		return
	}

	pub, err := attest.ParseKey(req.PublicKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	valid, err := attest.VerifyClaim(pub, req.Geohash, req.Signature.value, nil)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"valid": valid})
}

type attestRequest struct {
	Accuracy int `json:"accuracy"`
}

func (s *Server) createAttestation(ctx *gin.Context) {
	if !s.hasKey {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "server holds no signing key"})

		return
	}

	req := attestRequest{Accuracy: 6}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if req.Accuracy < geohash.MinPrecision || req.Accuracy > geohash.MaxPrecision {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "accuracy must be between 1 and 12",
		})

		return
	}

	att, err := s.attestor.Attest(ctx.Request.Context(), s.key, req.Accuracy)
	if err != nil {
		status := http.StatusInternalServerError
		if attest.IsLocationUnavailable(err) {
			status = http.StatusBadGateway
		}

		ctx.JSON(status, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"geohash":    att.Geohash,
		"signature":  att.Signature,
		"public_key": attest.PublicKey(s.key).Hex(),
	})
}
