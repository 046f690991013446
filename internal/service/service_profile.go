// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-profile/internal/logger"
	"github.com/MKhiriev/go-auth-profile/internal/store"
	"github.com/MKhiriev/go-auth-profile/models"
)

type profileService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the public projection of the user the identity was
// issued for. store.ErrNoUserWasFound is passed through wrapped; the caller
// decides how to present it.
func (s *profileService) GetProfile(ctx context.Context, identity models.Identity) (models.Profile, error) {
	user, err := s.userRepository.FindProfileByID(ctx, identity.SubjectID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup for %q failed: %w", identity.SubjectID, err)
	}

	return user.Profile(), nil
}
