package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func NodeID(id uint64) Field {
	return Uint64("node_id", id)
}

func EdgeID(id uint64) Field {
	return Uint64("edge_id", id)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// VertexID identifies a graph vertex in index-build and cluster-query logs.
func VertexID(id uint32) Field {
	return Int64("vertex_id", int64(id))
}

// Similarity records a similarity score (cosine/Jaccard, exact or
// approximate) attached to a log line.
func Similarity(value float32) Field {
	return Float64("similarity", float64(value))
}

// ClusterID records the cluster id a Cluster query assigned.
func ClusterID(id int32) Field {
	return Int64("cluster_id", int64(id))
}

// BuildID tags every log line emitted during one Index build with a
// shared identifier, so build-phase lines can be correlated in aggregate
// logs even when builds run concurrently.
func BuildID(id string) Field {
	return String("build_id", id)
}
