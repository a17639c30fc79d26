package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ClusterRequest represents a Cluster(mu, epsilon) query against a built
// index. Mu must be at least 2 (a core always counts itself plus at least
// one epsilon-neighbor); epsilon is a similarity threshold in [0,1].
type ClusterRequest struct {
	Mu      uint32  `json:"mu" validate:"required,min=2"`
	Epsilon float64 `json:"epsilon" validate:"min=0,max=1"`
}

// BuildRequest represents the parameters used to build a new index.
type BuildRequest struct {
	Similarity  string `json:"similarity" validate:"required,oneof=cosine jaccard approx_cosine approx_jaccard"`
	NumSamples  int    `json:"numSamples" validate:"omitempty,min=1,max=65536"`
	RandomSeed  uint64 `json:"randomSeed"`
	WorkerCount int    `json:"workerCount" validate:"omitempty,min=1"`
}

// ValidateClusterRequest validates a Cluster(mu, epsilon) query.
func ValidateClusterRequest(req *ClusterRequest) error {
	if req == nil {
		return errors.New("cluster request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if req.Epsilon != req.Epsilon { // NaN is never equal to itself
		return errors.New("epsilon: must not be NaN")
	}
	return nil
}

// ValidateBuildRequest validates the parameters of an index build.
func ValidateBuildRequest(req *BuildRequest) error {
	if req == nil {
		return errors.New("build request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	needsSamples := req.Similarity == "approx_cosine" || req.Similarity == "approx_jaccard"
	if needsSamples && req.NumSamples <= 0 {
		return fmt.Errorf("numSamples: required field is zero for similarity %q", req.Similarity)
	}
	return nil
}

// formatValidationError converts validator errors into a user-friendly
// single-error message, reporting the first violation encountered.
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
