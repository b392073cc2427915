package tencentconfig

import (
	"errors"
	"fmt"

	"github.com/elC0mpa/cloud-finance/model"
	tcbilling "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/billing/v20180709"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
)

// ErrMissingCredentials is returned when the secret id or key is empty
var ErrMissingCredentials = errors.New("tencent cloud secret id and key are required")

func NewService(endpoint string) *service {
	return &service{
		endpoint: endpoint,
	}
}

// GetClientProfile returns the SDK profile pointing at the billing endpoint.
// The SDK default request timeout is left untouched.
func (s *service) GetClientProfile() *profile.ClientProfile {
	cpf := profile.NewClientProfile()
	if s.endpoint != "" {
		cpf.HttpProfile.Endpoint = s.endpoint
	}
	return cpf
}

func (s *service) GetBillingClient(creds model.Credentials) (*tcbilling.Client, error) {
	if !creds.IsComplete() {
		return nil, ErrMissingCredentials
	}

	credential := common.NewCredential(creds.SecretID, creds.SecretKey)
	client, err := tcbilling.NewClient(credential, creds.Region, s.GetClientProfile())
	if err != nil {
		return nil, fmt.Errorf("failed to create Tencent Cloud billing client: %w", err)
	}

	return client, nil
}
