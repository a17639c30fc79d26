package validation

import "testing"

func TestValidateClusterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     *ClusterRequest
		wantErr bool
	}{
		{"valid", &ClusterRequest{Mu: 3, Epsilon: 0.5}, false},
		{"mu too small", &ClusterRequest{Mu: 1, Epsilon: 0.5}, true},
		{"mu zero", &ClusterRequest{Mu: 0, Epsilon: 0.5}, true},
		{"epsilon below range", &ClusterRequest{Mu: 2, Epsilon: -0.1}, true},
		{"epsilon above range", &ClusterRequest{Mu: 2, Epsilon: 1.1}, true},
		{"epsilon boundary zero", &ClusterRequest{Mu: 2, Epsilon: 0}, false},
		{"epsilon boundary one", &ClusterRequest{Mu: 2, Epsilon: 1}, false},
		{"nil request", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClusterRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClusterRequest(%+v) error = %v, wantErr %v", tt.req, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClusterRequestNaN(t *testing.T) {
	nan := 0.0
	nan /= nan
	err := ValidateClusterRequest(&ClusterRequest{Mu: 2, Epsilon: nan})
	if err == nil {
		t.Error("expected error for NaN epsilon")
	}
}

func TestValidateBuildRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     *BuildRequest
		wantErr bool
	}{
		{"exact cosine", &BuildRequest{Similarity: "cosine"}, false},
		{"exact jaccard", &BuildRequest{Similarity: "jaccard"}, false},
		{"approx cosine with samples", &BuildRequest{Similarity: "approx_cosine", NumSamples: 256}, false},
		{"approx cosine missing samples", &BuildRequest{Similarity: "approx_cosine"}, true},
		{"unknown similarity", &BuildRequest{Similarity: "euclidean"}, true},
		{"missing similarity", &BuildRequest{}, true},
		{"nil request", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBuildRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBuildRequest(%+v) error = %v, wantErr %v", tt.req, err, tt.wantErr)
			}
		})
	}
}
