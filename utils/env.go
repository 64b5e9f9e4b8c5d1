package utils

import "os"

var (
	// NTUPLE_TREE is the tree path inside ROOT ntuples written by the HGCalAnalysis analyzer
	NTUPLE_TREE = GetEnvOrDefault("NTUPLE_TREE", "ana/hgc")
	MAX_EVENTS  = GetEnvOrDefaultInt("MAX_EVENTS", -1)

	HTTP_PORT = GetEnvOrDefault("HTTP_PORT", "8080")

	FETCH_DIR         = GetEnvOrDefault("FETCH_DIR", os.TempDir())
	FETCH_MAX_RETRIES = GetEnvOrDefaultInt("FETCH_MAX_RETRIES", 5)

	AWS_ACCESS_KEY_ID     = os.Getenv("AWS_ACCESS_KEY_ID")
	AWS_SECRET_ACCESS_KEY = os.Getenv("AWS_SECRET_ACCESS_KEY")
	AWS_DEFAULT_REGION    = GetEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1")

	S3_ENDPOINT = os.Getenv("S3_ENDPOINT")
)
