package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Ingest     IngestConfig     `yaml:"ingest"`
	Kafka      KafkaConfig      `yaml:"kafka"`

	// Secrets are env-only and never read from config.yaml.
	GeminiApiKey string `yaml:"-"`
	OpenAIApiKey string `yaml:"-"`
	MongoURI     string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type MongoConfig struct {
	DBName           string `yaml:"db_name"`
	VectorCollection string `yaml:"vector_collection"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type OpenAIConfig struct {
	EmbeddingModel string `yaml:"embedding_model"`
	WhisperModel   string `yaml:"whisper_model"`
}

// TranscriptConfig controls the video transcript acquisition path.
type TranscriptConfig struct {
	// Language is the caption track language to look for before
	// falling back to speech recognition.
	Language string `yaml:"language"`

	// AudioDir is the scratch directory for extracted audio files.
	// Empty means os.TempDir().
	AudioDir string `yaml:"audio_dir"`

	// ArchiveDir is where acquired transcripts are persisted for
	// audit/debugging. Empty disables archiving.
	ArchiveDir string `yaml:"archive_dir"`

	// YtDlpPath is the yt-dlp binary used for audio extraction.
	YtDlpPath string `yaml:"ytdlp_path"`
}

// IngestConfig controls the ingestion pipeline.
type IngestConfig struct {
	// SummaryRequired makes a summarization failure abort the whole
	// ingestion. The default (false) logs the failure and still
	// indexes the full document.
	SummaryRequired bool `yaml:"summary_required"`

	// ChunkWords and ChunkOverlap control how clean text is split
	// into retrieval chunks.
	ChunkWords   int `yaml:"chunk_words"`
	ChunkOverlap int `yaml:"chunk_overlap"`

	// TopK is the number of chunks retrieved per question.
	TopK int `yaml:"top_k"`
}

type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.OpenAIApiKey = os.Getenv("OPENAI_API_KEY")
	c.MongoURI = os.Getenv("MONGO_URI")

	applyDefaults(&c)
	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "secondbrain"
	}
	if c.Mongo.VectorCollection == "" {
		c.Mongo.VectorCollection = "vectors"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Transcript.Language == "" {
		c.Transcript.Language = "en"
	}
	if c.Transcript.YtDlpPath == "" {
		c.Transcript.YtDlpPath = "yt-dlp"
	}
	if c.Ingest.ChunkWords <= 0 {
		c.Ingest.ChunkWords = 200
	}
	if c.Ingest.ChunkOverlap < 0 || c.Ingest.ChunkOverlap >= c.Ingest.ChunkWords {
		c.Ingest.ChunkOverlap = 40
	}
	if c.Ingest.TopK <= 0 {
		c.Ingest.TopK = 4
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
