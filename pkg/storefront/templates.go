package storefront

import "html/template"

var pageTemplates = template.Must(template.New("storefront").Parse(`
{{define "header"}}
<div class="primary_header">
  <div class="header_label">Swag Labs</div>
  <a id="shopping_cart_container" class="shopping_cart_link" href="/cart.html">{{if gt .CartCount 0}}<span class="shopping_cart_badge">{{.CartCount}}</span>{{end}}</a>
</div>
{{if .Title}}<span class="title">{{.Title}}</span>{{end}}
{{end}}

{{define "login"}}
<html><head><title>Swag Labs</title></head><body>
<div class="login_wrapper">
  <form method="POST" action="/login">
    <input type="text" id="user-name" name="user-name" placeholder="Username" value="">
    <input type="password" id="password" name="password" placeholder="Password" value="">
    <input type="submit" id="login-button" name="login-button" value="Login">
  </form>
  {{if .Error}}
  <div class="error-message-container">
    <h3>{{.Error}}</h3>
    <form method="POST" action="/dismiss-error"><button class="error-button">x</button></form>
  </div>
  {{end}}
</div>
</body></html>
{{end}}

{{define "inventory"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<form method="GET" action="/inventory.html">
  <select class="product_sort_container" name="sort">
    <option value="az" {{if eq .Sort "az"}}selected{{end}}>Name (A to Z)</option>
    <option value="za" {{if eq .Sort "za"}}selected{{end}}>Name (Z to A)</option>
    <option value="lohi" {{if eq .Sort "lohi"}}selected{{end}}>Price (low to high)</option>
    <option value="hilo" {{if eq .Sort "hilo"}}selected{{end}}>Price (high to low)</option>
  </select>
</form>
<div class="inventory_list">
{{range .Items}}
  <div class="inventory_item">
    <div class="inventory_item_img">
      <a href="/inventory-item.html?id={{.ID}}"><img src="{{.Image}}" alt="{{.Name}}"></a>
    </div>
    <a href="/inventory-item.html?id={{.ID}}" class="inventory_item_label_link"><div class="inventory_item_name">{{.Name}}</div></a>
    <div class="inventory_item_desc">{{.Desc}}</div>
    <div class="inventory_item_price">${{.Price}}</div>
    <form method="POST" action="/cart/toggle">
      <input type="hidden" name="id" value="{{.ID}}">
      <input type="hidden" name="back" value="{{$.Back}}">
      <button>{{if .InCart}}Remove{{else}}Add to cart{{end}}</button>
    </form>
  </div>
{{end}}
</div>
</body></html>
{{end}}

{{define "cart"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<div class="cart_list">
{{range .Items}}
  <div class="cart_item">
    <div class="cart_quantity">1</div>
    <a href="/inventory-item.html?id={{.ID}}"><div class="inventory_item_name">{{.Name}}</div></a>
    <div class="inventory_item_desc">{{.Desc}}</div>
    <div class="inventory_item_price">${{.Price}}</div>
    <form method="POST" action="/cart/toggle">
      <input type="hidden" name="id" value="{{.ID}}">
      <input type="hidden" name="back" value="/cart.html">
      <button>Remove</button>
    </form>
  </div>
{{end}}
</div>
<form method="GET" action="/inventory.html"><button id="continue-shopping">Continue Shopping</button></form>
<form method="GET" action="/checkout-step-one.html"><button id="checkout">Checkout</button></form>
</body></html>
{{end}}

{{define "checkout-step-one"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<div class="checkout_info">
  <form method="POST" action="/checkout-step-one">
    <input type="text" id="first-name" name="firstName" placeholder="First Name" value="">
    <input type="text" id="last-name" name="lastName" placeholder="Last Name" value="">
    <input type="text" id="postal-code" name="postalCode" placeholder="Zip/Postal Code" value="">
    <input type="submit" id="continue" name="continue" value="Continue">
  </form>
  <form method="GET" action="/cart.html"><button id="cancel">Cancel</button></form>
</div>
</body></html>
{{end}}

{{define "checkout-step-two"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<div class="cart_list">
{{range .Items}}
  <div class="cart_item">
    <div class="cart_quantity">1</div>
    <a href="/inventory-item.html?id={{.ID}}"><div class="inventory_item_name">{{.Name}}</div></a>
    <div class="inventory_item_desc">{{.Desc}}</div>
    <div class="inventory_item_price">${{.Price}}</div>
  </div>
{{end}}
</div>
<div class="summary_info">
  <div class="summary_info_label">Payment Information:</div>
  <div class="summary_value_label">SauceCard #31337</div>
  <div class="summary_info_label">Shipping Information:</div>
  <div class="summary_value_label">Free Pony Express Delivery!</div>
  <div class="summary_info_label">Price Total</div>
  <div class="summary_subtotal_label">Item total: ${{.Sum}}</div>
  <div class="summary_tax_label">Tax: ${{.Tax}}</div>
  <div class="summary_total_label">Total: ${{.Total}}</div>
</div>
<form method="POST" action="/checkout-finish"><button id="finish">Finish</button></form>
<form method="GET" action="/cart.html"><button id="cancel">Cancel</button></form>
</body></html>
{{end}}

{{define "checkout-complete"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<div class="checkout_complete_container">
  <h2 class="complete-header">{{.CompleteHeader}}</h2>
  <div class="complete-text">{{.CompleteText}}</div>
  <form method="GET" action="/inventory.html"><button id="back-to-products">Back Home</button></form>
</div>
</body></html>
{{end}}

{{define "item-detail"}}
<html><head><title>Swag Labs</title></head><body>
{{template "header" .}}
<div class="inventory_details">
  <form method="GET" action="/inventory.html"><button id="back-to-products">Back to products</button></form>
  <div class="inventory_details_img_container">
    <img class="inventory_details_img" src="{{.Item.Image}}" alt="{{.Item.Name}}">
  </div>
  <div class="inventory_details_desc_container">
    <div class="inventory_details_name">{{.Item.Name}}</div>
    <div class="inventory_details_desc">{{.Item.Desc}}</div>
    <div class="inventory_details_price">${{.Item.Price}}</div>
    {{if .Known}}
    <form method="POST" action="/cart/toggle">
      <input type="hidden" name="id" value="{{.Item.ID}}">
      <input type="hidden" name="back" value="/inventory-item.html?id={{.Item.ID}}">
      <button>{{if .Item.InCart}}Remove{{else}}Add to cart{{end}}</button>
    </form>
    {{end}}
  </div>
</div>
</body></html>
{{end}}
`))
