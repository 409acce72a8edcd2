package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMLoader reads every parameter under Path from Systems Manager Parameter Store.
type SSMLoader struct {
	Client ssm.GetParametersByPathAPIClient
	Path   string
}

func NewSSMLoader(cfg aws.Config, path string) *SSMLoader {
	return &SSMLoader{Client: ssm.NewFromConfig(cfg), Path: path}
}

func (l *SSMLoader) Load(ctx context.Context) (Credentials, error) {
	params := make(map[string]string)
	paginator := ssm.NewGetParametersByPathPaginator(l.Client, &ssm.GetParametersByPathInput{
		Path:           aws.String(l.Path),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return Credentials{}, fmt.Errorf("failed to read parameters under %s: %w", l.Path, err)
		}
		for _, p := range page.Parameters {
			params[ShortName(aws.ToString(p.Name))] = aws.ToString(p.Value)
		}
	}
	return FromParameters(params)
}

type SecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerLoader reads a JSON object secret holding AppKey and UserKey.
type SecretsManagerLoader struct {
	Client   SecretValueAPI
	SecretID string
}

func NewSecretsManagerLoader(cfg aws.Config, secretID string) *SecretsManagerLoader {
	return &SecretsManagerLoader{Client: secretsmanager.NewFromConfig(cfg), SecretID: secretID}
}

func (l *SecretsManagerLoader) Load(ctx context.Context) (Credentials, error) {
	out, err := l.Client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(l.SecretID),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read secret %s: %w", l.SecretID, err)
	}
	var params map[string]string
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &params); err != nil {
		return Credentials{}, fmt.Errorf("secret %s is not a JSON object: %w", l.SecretID, err)
	}
	return FromParameters(params)
}
