package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSSM struct {
	pages [][]types.Parameter
	calls []*ssm.GetParametersByPathInput
	err   error
}

func (s *stubSSM) GetParametersByPath(ctx context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	s.calls = append(s.calls, in)
	if s.err != nil {
		return nil, s.err
	}
	idx := len(s.calls) - 1
	out := &ssm.GetParametersByPathOutput{Parameters: s.pages[idx]}
	if idx+1 < len(s.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func param(name, value string) types.Parameter {
	return types.Parameter{Name: aws.String(name), Value: aws.String(value)}
}

func TestSSMLoaderCollectsAllPages(t *testing.T) {
	client := &stubSSM{pages: [][]types.Parameter{
		{param("/pushover/sms/AppKey", "app-token")},
		{param("/pushover/sms/UserKey", "user-token"), param("/pushover/sms/Other", "x")},
	}}
	loader := &SSMLoader{Client: client, Path: "/pushover/sms"}

	creds, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Credentials{AppKey: "app-token", UserKey: "user-token"}, creds)

	require.Len(t, client.calls, 2)
	assert.Equal(t, "/pushover/sms", aws.ToString(client.calls[0].Path))
	assert.True(t, aws.ToBool(client.calls[0].WithDecryption))
}

func TestSSMLoaderMissingKey(t *testing.T) {
	client := &stubSSM{pages: [][]types.Parameter{{param("/pushover/sms/AppKey", "app-token")}}}
	loader := &SSMLoader{Client: client, Path: "/pushover/sms"}

	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), UserKeyName)
}

func TestSSMLoaderPropagatesError(t *testing.T) {
	loader := &SSMLoader{Client: &stubSSM{err: errors.New("access denied")}, Path: "/pushover/sms"}

	_, err := loader.Load(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

type stubSecretValue struct {
	value string
}

func (s stubSecretValue) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(s.value)}, nil
}

func TestSecretsManagerLoader(t *testing.T) {
	loader := &SecretsManagerLoader{
		Client:   stubSecretValue{value: `{"AppKey":"a","UserKey":"u"}`},
		SecretID: "pushover/sms",
	}
	creds, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Credentials{AppKey: "a", UserKey: "u"}, creds)

	loader.Client = stubSecretValue{value: "not json"}
	_, err = loader.Load(context.Background())
	assert.Error(t, err)

	loader.Client = stubSecretValue{value: `{"UserKey":"u"}`}
	_, err = loader.Load(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestEnvLoader(t *testing.T) {
	_, err := EnvLoader{AppKey: "a"}.Load(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredential)

	creds, err := EnvLoader{AppKey: "a", UserKey: "u"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u", creds.UserKey)
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "AppKey", ShortName("/pushover/sms/AppKey"))
	assert.Equal(t, "AppKey", ShortName("AppKey"))
}
