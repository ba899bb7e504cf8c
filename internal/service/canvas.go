package service

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vibejam-co/jam-sub001/internal/catalog"
	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/internal/transform"
	"github.com/vibejam-co/jam-sub001/pkg/errors"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
	"github.com/vibejam-co/jam-sub001/pkg/metrics"
)

type CanvasWriter interface {
	Create(ctx context.Context, row *models.CanvasClaimRow) error
}

type CanvasService struct {
	claims CanvasWriter
}

func NewCanvasService(claims CanvasWriter) *CanvasService {
	return &CanvasService{claims: claims}
}

// Claim 校验并保存访客的画布认领
func (s *CanvasService) Claim(ctx context.Context, raw []byte) error {
	claim, err := NormalizeClaim(raw)
	if err != nil {
		metrics.RecordCanvasClaim("rejected")
		return err
	}

	if !catalog.HasTheme(claim.SelectedTheme) {
		logger.WithFields(map[string]interface{}{
			"claimed_name": claim.ClaimedName,
			"theme":        claim.SelectedTheme,
		}).Warn("Canvas claim selected a theme outside the catalog")
	}

	row := transform.CanvasClaimRowFrom(claim)
	if err := s.claims.Create(ctx, &row); err != nil {
		metrics.RecordCanvasClaim("failed")
		return errors.Storage(errors.ErrClaimInsert, "failed to save canvas claim", err)
	}

	metrics.RecordCanvasClaim("success")
	logger.WithFields(map[string]interface{}{
		"claim_id":     row.ID,
		"claimed_name": claim.ClaimedName,
		"theme":        claim.SelectedTheme,
		"signals":      len(claim.SelectedSignals),
	}).Info("Canvas claimed")

	return nil
}

// NormalizeClaim turns a loosely typed submission into a claim. Only a
// missing profile name is an error; every other field is defaulted, and
// selectedSignals or links of the wrong shape are treated as empty.
func NormalizeClaim(raw []byte) (models.CanvasClaim, error) {
	if !gjson.ValidBytes(raw) {
		return models.CanvasClaim{}, errors.Validation("request body must be valid JSON")
	}

	profile := gjson.GetBytes(raw, "profile")
	name := stringField(profile, "name")
	if name == "" {
		return models.CanvasClaim{}, errors.Validation("profile.name is required")
	}

	claim := models.CanvasClaim{
		ClaimedName:     stringField(gjson.ParseBytes(raw), "claimedName"),
		DisplayName:     stringField(profile, "displayName"),
		Bio:             stringField(profile, "bio"),
		AvatarURL:       stringField(profile, "avatarUrl"),
		SelectedTheme:   stringField(gjson.ParseBytes(raw), "selectedTheme"),
		SelectedSignals: signals(gjson.GetBytes(raw, "selectedSignals")),
		Links:           links(gjson.GetBytes(raw, "links")),
	}

	if claim.ClaimedName == "" {
		claim.ClaimedName = name
	}
	if claim.DisplayName == "" {
		claim.DisplayName = name
	}
	if claim.SelectedTheme == "" {
		claim.SelectedTheme = catalog.DefaultThemeID
	}

	return claim, nil
}

func stringField(parent gjson.Result, path string) string {
	v := parent.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// signals keeps the string elements of an array, first occurrence wins.
func signals(v gjson.Result) []string {
	out := []string{}
	if !v.IsArray() {
		return out
	}

	seen := map[string]bool{}
	v.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			return true
		}
		s := item.String()
		if s == "" || seen[s] {
			return true
		}
		seen[s] = true
		out = append(out, s)
		return true
	})
	return out
}

func links(v gjson.Result) map[string]string {
	out := map[string]string{}
	if !v.IsObject() {
		return out
	}

	v.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			out[key.String()] = value.String()
		}
		return true
	})
	return out
}
