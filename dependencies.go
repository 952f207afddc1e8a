package zenhubbridge

import "context"

// GetDependencies lists all blocking relations of a repository.
func (c *Client) GetDependencies(ctx context.Context, repoID int) (*Dependencies, error) {
	params := Params{"repo_id": repoID}
	var out Dependencies
	if err := c.callModel(ctx, OpGetDependencies, params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDependency records that one issue blocks another and returns the
// created relation.
func (c *Client) CreateDependency(ctx context.Context, blocking, blocked Issue) (*Dependency, error) {
	var out Dependency
	body := Dependency{Blocking: blocking, Blocked: blocked}
	if err := c.callModel(ctx, OpCreateDependency, Params{}, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveDependency deletes a blocking relation.
func (c *Client) RemoveDependency(ctx context.Context, blocking, blocked Issue) error {
	body := Dependency{Blocking: blocking, Blocked: blocked}
	return c.callEmpty(ctx, OpRemoveDependency, Params{}, body)
}
