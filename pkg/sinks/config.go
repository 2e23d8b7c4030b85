package sinks

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk list of character sinks. JSON files parse too.
type File struct {
	Sinks []SinkConfig `yaml:"sinks"`
}

// SinkConfig names one destination. Exactly one destination block must be set.
type SinkConfig struct {
	Name     string        `yaml:"name"`
	Disabled bool          `yaml:"disabled"`
	HTTP     *HTTPConfig   `yaml:"http"`
	SQS      *SQSConfig    `yaml:"sqs"`
	SNS      *SNSConfig    `yaml:"sns"`
	PubSub   *PubSubConfig `yaml:"gcp_pubsub"`
}

// HTTPConfig posts each record to a webhook.
type HTTPConfig struct {
	URL            string            `yaml:"url"`
	Method         string            `yaml:"method"`
	Headers        map[string]string `yaml:"headers"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
}

// AWSConfig selects the region and optional static credentials.
type AWSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
}

type SQSConfig struct {
	AWSConfig `yaml:",inline"`
	QueueURL  string `yaml:"queue_url"`
}

type SNSConfig struct {
	AWSConfig `yaml:",inline"`
	TopicARN  string `yaml:"topic_arn"`
}

type PubSubConfig struct {
	ProjectID       string `yaml:"project_id"`
	Topic           string `yaml:"topic"`
	CredentialsFile string `yaml:"credentials_file"`
}

const (
	KindHTTP   = "http"
	KindSQS    = "sqs"
	KindSNS    = "sns"
	KindPubSub = "gcp_pubsub"
)

// Kind reports which destination block is set, or "" when none or several are.
func (c SinkConfig) Kind() string {
	var kinds []string
	if c.HTTP != nil {
		kinds = append(kinds, KindHTTP)
	}
	if c.SQS != nil {
		kinds = append(kinds, KindSQS)
	}
	if c.SNS != nil {
		kinds = append(kinds, KindSNS)
	}
	if c.PubSub != nil {
		kinds = append(kinds, KindPubSub)
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Load reads path and returns the enabled sinks in file order.
func Load(path string) ([]SinkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sinks file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sinks file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Sinks))
	enabled := make([]SinkConfig, 0, len(file.Sinks))
	for i, sc := range file.Sinks {
		sc.Name = strings.TrimSpace(sc.Name)
		if sc.Name == "" {
			return nil, fmt.Errorf("sink %d: name is required", i)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("sink %q: duplicate name", sc.Name)
		}
		seen[sc.Name] = true

		if err := sc.validate(); err != nil {
			return nil, fmt.Errorf("sink %q: %w", sc.Name, err)
		}
		if !sc.Disabled {
			enabled = append(enabled, sc)
		}
	}
	return enabled, nil
}

func (c SinkConfig) validate() error {
	switch c.Kind() {
	case KindHTTP:
		if c.HTTP.URL == "" {
			return fmt.Errorf("http.url is required")
		}
	case KindSQS:
		if c.SQS.QueueURL == "" || c.SQS.Region == "" {
			return fmt.Errorf("sqs.queue_url and sqs.region are required")
		}
	case KindSNS:
		if c.SNS.TopicARN == "" {
			return fmt.Errorf("sns.topic_arn is required")
		}
		if c.SNS.Region == "" && regionFromARN(c.SNS.TopicARN) == "" {
			return fmt.Errorf("sns.region is required when topic_arn carries none")
		}
	case KindPubSub:
		if c.PubSub.ProjectID == "" || c.PubSub.Topic == "" {
			return fmt.Errorf("gcp_pubsub.project_id and gcp_pubsub.topic are required")
		}
	default:
		return fmt.Errorf("exactly one of http, sqs, sns, gcp_pubsub must be set")
	}
	return nil
}

// regionFromARN returns the region segment of arn:partition:service:region:account:resource.
func regionFromARN(arn string) string {
	parts := strings.Split(arn, ":")
	if len(parts) < 6 || parts[0] != "arn" {
		return ""
	}
	return parts[3]
}
