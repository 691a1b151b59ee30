package settings

type Config struct {
	Logger Logger `yaml:"logger"`
	Queue  Queue  `yaml:"queue" validate:"required"`
	Bench  Bench  `yaml:"bench" validate:"required"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `yaml:"compress"`
}

// Queue is the configuration for the queue under test
type Queue struct {
	Capacity       int    `yaml:"capacity" validate:"gt=0"`
	Implementation string `yaml:"implementation" validate:"oneof=twolock shared"`
}

// Bench is the configuration for the benchmark harness
type Bench struct {
	Threads    []int `yaml:"threads" validate:"min=1,dive,gte=2"`
	Operations int   `yaml:"operations" validate:"gte=2"` // Enqueue plus dequeue calls per run
	Repeat     int   `yaml:"repeat" validate:"gt=0"`      // Runs averaged per thread count
}
