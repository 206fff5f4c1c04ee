package canister

import "fmt"

func (e *APIError) Error() string {
	return fmt.Sprintf("canister gateway error code: %s, description: %s", e.Code, e.Message)
}

// HTTPStatus reports the status code of the failed gateway response.
func (e *APIError) HTTPStatus() int {
	return int(e.StatusCode)
}
