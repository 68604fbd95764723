// Package mission is the single registration site for survey-specific data:
// the raw feature schema each survey exposes, the renames that unify physical
// quantities across surveys, and the fallback prediction constant used when no
// trained model artifact is available. Adding a survey means adding one Entry.
package mission

import (
	"errors"
	"fmt"
	"strings"
)

// Key identifies one of the supported survey missions.
type Key string

const (
	TESS   Key = "TESS"
	Kepler Key = "KEPLER"
	K2     Key = "K2"
)

// ErrUnsupported is returned by Parse for a mission outside the registry.
var ErrUnsupported = errors.New("unsupported mission")

// Parse normalizes a mission identifier: case-insensitive, surrounding
// whitespace trimmed, and a trailing "_model"/"-model" suffix (as carried by
// some artifact names) stripped.
func Parse(s string) (Key, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "_MODEL")
	norm = strings.TrimSuffix(norm, "-MODEL")
	k := Key(norm)
	if _, ok := registry[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return k, nil
}

// Keys returns the registered missions in a fixed display order.
func Keys() []Key {
	return []Key{TESS, Kepler, K2}
}

// Entry holds everything the pipeline needs to know about one mission.
type Entry struct {
	// Schema is the ordered list of raw survey columns fed to the model.
	Schema []string
	// Renames maps raw survey columns to their unified physical names.
	Renames map[string]string
	// Fallback is the constant emitted when no model artifact resolves.
	Fallback float64
}

// UnifiedColumns are the physical columns every output table carries,
// regardless of mission, absent values marked explicitly.
var UnifiedColumns = []string{"Stellar Radius", "Planet Radius", "Orbital Period"}

// SchemaFor returns the mission's ordered feature schema.
// ok is false for a key outside the registry; callers then fall back to
// selecting all numeric columns from the input.
func SchemaFor(k Key) ([]string, bool) {
	e, ok := registry[k]
	if !ok {
		return nil, false
	}
	return e.Schema, true
}

// RenamesFor returns the mission's raw-column → unified-name map.
// Empty for unregistered keys.
func RenamesFor(k Key) map[string]string {
	return registry[k].Renames
}

// FallbackFor returns the constant prediction for a mission with no
// loadable model artifact.
func FallbackFor(k Key) float64 {
	return registry[k].Fallback
}

var registry = map[Key]Entry{
	TESS: {
		Schema: []string{
			"ra", "dec", "st_pmra", "st_pmraerr1", "st_pmdec",
			"st_pmdecerr1", "pl_tranmid", "pl_tranmiderr1", "pl_orbper",
			"pl_orbpererr1", "pl_trandurh", "pl_trandurherr1", "pl_trandep",
			"pl_trandeperr1", "pl_rade", "pl_radeerr1", "pl_insol", "pl_eqt",
			"st_tmag", "st_tmagerr1", "st_dist", "st_disterr1", "st_teff",
			"st_tefferr1", "st_logg", "st_loggerr1", "st_rad", "st_raderr1",
		},
		Renames: map[string]string{
			"st_rad":    "Stellar Radius",
			"pl_rade":   "Planet Radius",
			"pl_orbper": "Orbital Period",
		},
		Fallback: 1.0,
	},
	Kepler: {
		Schema: []string{
			"koi_fpflag_nt", "koi_fpflag_ss", "koi_fpflag_co",
			"koi_fpflag_ec", "koi_period", "koi_period_err1", "koi_time0bk",
			"koi_time0bk_err1", "koi_impact", "koi_impact_err1", "koi_impact_err2",
			"koi_duration", "koi_duration_err1", "koi_depth", "koi_depth_err1",
			"koi_prad", "koi_prad_err1", "koi_prad_err2", "koi_teq", "koi_insol",
			"koi_insol_err1", "koi_insol_err2", "koi_model_snr", "koi_steff",
			"koi_steff_err1", "koi_steff_err2", "koi_slogg", "koi_slogg_err1",
			"koi_slogg_err2", "koi_srad", "koi_srad_err1", "koi_srad_err2", "ra",
			"dec", "koi_kepmag",
		},
		Renames: map[string]string{
			"koi_srad":   "Stellar Radius",
			"koi_prad":   "Planet Radius",
			"koi_period": "Orbital Period",
		},
		Fallback: 0.0,
	},
	K2: {
		Schema: []string{
			"sy_snum", "sy_pnum", "pl_orbper", "pl_orbpererr1",
			"pl_orbpererr2", "pl_orbperlim", "pl_rade", "pl_radeerr1",
			"pl_radeerr2", "pl_radelim", "pl_radj", "pl_radjerr1", "pl_radjerr2",
			"pl_radjlim", "ttv_flag", "st_teff", "st_tefferr1", "st_tefferr2",
			"st_rad", "st_raderr1", "st_raderr2", "st_mass", "st_masserr1",
			"st_masserr2", "st_met", "st_meterr1", "st_meterr2", "st_logg",
			"st_loggerr1", "st_loggerr2", "ra", "dec", "sy_dist", "sy_disterr1",
			"sy_disterr2", "sy_vmag", "sy_vmagerr1", "sy_kmag", "sy_kmagerr1",
			"sy_gaiamag", "sy_gaiamagerr1",
		},
		Renames: map[string]string{
			"st_rad":    "Stellar Radius",
			"pl_rade":   "Planet Radius",
			"pl_orbper": "Orbital Period",
		},
		Fallback: 0.0,
	},
}
