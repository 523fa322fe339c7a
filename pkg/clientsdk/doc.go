/*
Package clientsdk is a Go client for the clients service, which manages
OAuth client applications and their API subscriptions on behalf of API
manager users.

# Usage

Every clients call authenticates with the API manager credentials the
SDKClient was built with:

	client := clientsdk.NewSDKClient("https://clients.example.org", "alice", "secret")

	created, err := client.CreateClient(ctx, clientsdk.CreateClientRequest{
		ClientName:  "reports",
		CallbackURL: "https://reports.example.org/callback",
	})
	// created.ConsumerSecret is only available here.

	err = client.Subscribe(ctx, "reports", clientsdk.SubscriptionRequest{APIName: "Jobs"})
	err = client.Unsubscribe(ctx, "reports", clientsdk.SubscriptionRequest{APIName: clientsdk.AllAPIs})

# Errors

Non-success answers are returned as *APIError. IsNotFound, IsUnauthorized
and IsBadRequest classify them.
*/
package clientsdk
