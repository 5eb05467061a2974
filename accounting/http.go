package accounting

import "time"

// HTTPRequestTimeout is the default timeout for all HTTP requests to the accounting API.
const HTTPRequestTimeout = 60 * time.Second

// DefaultBasePath is prefixed to every endpoint path.
const DefaultBasePath = "/accounting/v1"
