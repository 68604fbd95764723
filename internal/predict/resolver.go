package predict

import (
	"os"
	"path/filepath"

	"exoscope/internal/logging"
)

// candidateNames lists the artifact basenames probed for a mission, in
// search order. The .pkl names match the original training pipeline's
// layout; .json holds the exported form this binary can actually decode.
func candidateNames(name string) []string {
	return []string{
		name + ".pkl",
		name + "_model.pkl",
		name + "-model.pkl",
		name + ".json",
		name + "_model.json",
	}
}

// Resolve locates and loads the mission's trained predictor from modelsDir.
// name is the lowercase mission identifier. The first existing candidate is
// read once and decoded; a decode failure or no existing candidate degrades
// to a Constant with the given fallback value. loaded reports whether a
// trained artifact is in play. Resolve never fails the run.
func Resolve(modelsDir, name string, fallback float64) (p Predictor, loaded bool) {
	logger := logging.New("predict")
	for _, base := range candidateNames(name) {
		path := filepath.Join(modelsDir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		model, err := UnmarshalModel(data)
		if err != nil {
			logger.Warn("model artifact unreadable, using fallback",
				"path", path, "fallback", fallback, "error", err)
			return Constant{Value: fallback}, false
		}
		logger.Info("model loaded", "path", path, "features", model.Features)
		return model, true
	}
	logger.Warn("no model artifact found, using fallback",
		"models_dir", modelsDir, "mission", name, "fallback", fallback)
	return Constant{Value: fallback}, false
}
