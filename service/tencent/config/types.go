package tencentconfig

import (
	"github.com/elC0mpa/cloud-finance/model"
	tcbilling "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/billing/v20180709"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
)

type service struct {
	endpoint string
}

type ConfigService interface {
	GetClientProfile() *profile.ClientProfile
	GetBillingClient(creds model.Credentials) (*tcbilling.Client, error)
}
