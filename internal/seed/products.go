// Package seed holds the stock demo catalog loaded by cmd/seed and the
// POST /api/products/seed endpoint.
package seed

import "github.com/bacharbh/shopeasy/internal/catalog/domain"

func Products() []domain.Product {
	return []domain.Product{
		{
			Name:        "Wireless Headphones",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=800&auto=format&fit=crop",
			Description: "Premium noise-cancelling wireless headphones with 30-hour battery life and immersive sound.",
			Specs:       []string{"Bluetooth 5.0", "30h battery", "Noise cancellation"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1583394838336-acd977736f90?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Smart Watch Elite",
			Price:       249.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=800&auto=format&fit=crop",
			Description: "Advanced fitness tracker with ECG, heart rate monitoring and GPS. Water resistant up to 50m.",
			Specs:       []string{"ECG Monitor", "GPS", "Water resistant 50m"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1508685096489-77a46807f0ea?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Pro Bluetooth Speaker",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?q=80&w=800&auto=format&fit=crop",
			Description: "Portable Bluetooth speaker with 360° sound, deep bass and IPX7 waterproof rating.",
			Specs:       []string{"IPX7 Waterproof", "12h battery", "360° sound"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1589492477829-5e65395b66cc?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Urban Laptop Backpack",
			Price:       59.99,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?q=80&w=800&auto=format&fit=crop",
			Description: "Stylish and durable laptop backpack with anti-theft pocket and USB charging port.",
			Specs:       []string{"Water resistant", "USB charging port", "Anti-theft"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1581605405669-fcdf81165afa?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "4K Action Camera",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1564466809058-bf4114d55352?q=80&w=800&auto=format&fit=crop",
			Description: "Capture your adventures in stunning 4K. Waterproof, shockproof, and ready for action.",
			Specs:       []string{"4K Video", "Waterproof", "WiFi"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1564466809058-bf4114d55352?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1502920917128-1aa500764cbd?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Gaming Mouse RGB",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?q=80&w=800&auto=format&fit=crop",
			Description: "High-precision gaming mouse with customizable RGB lighting and programmable buttons.",
			Specs:       []string{"16000 DPI", "RGB Lighting", "Programmable Buttons"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Mechanical Keyboard",
			Price:       119.99,
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?q=80&w=800&auto=format&fit=crop",
			Description: "Tactile mechanical keyboard for typing enthusiasts and gamers. Durable aluminum frame.",
			Specs:       []string{"Blue Switches", "RGB Backlight", "Aluminum Frame"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1595044426077-d36d9236d54a?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Wireless Charger Pad",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1615526675159-e248c3021d3f?q=80&w=800&auto=format&fit=crop",
			Description: "Fast wireless charging pad for all Qi-enabled devices. Sleek and compact design.",
			Specs:       []string{"15W Fast Charge", "Qi Compatible", "LED Indicator"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1615526675159-e248c3021d3f?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1586816879360-004f5b0c51e3?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Noise Cancelling Earbuds",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=800&auto=format&fit=crop",
			Description: "True wireless earbuds with active noise cancellation and crystal clear call quality.",
			Specs:       []string{"ANC", "IPX4 Water Resistant", "24h Battery"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1572569028738-411a549d0306?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Smart Home Hub",
			Price:       149.99,
			Image:       "https://images.unsplash.com/photo-1558089687-f282ffcbc126?q=80&w=800&auto=format&fit=crop",
			Description: "Control your entire smart home from one device. Voice activated and compatible with all major brands.",
			Specs:       []string{"Voice Control", "Zigbee", "WiFi 6"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1558089687-f282ffcbc126?q=80&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1522273400909-fd1a8f77637e?q=80&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Ultra-Wide Monitor",
			Price:       499.99,
			Image:       "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&w=800&q=80",
			Description: "34-inch curved ultra-wide monitor for immersive gaming and productivity.",
			Specs:       []string{"34 inch", "144Hz", "1ms Response"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1547394765-185e1e68f34e?auto=format&fit=crop&w=200&auto=format&fit=crop",
			},
		},
		{
			Name:        "Ergonomic Office Chair",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?auto=format&fit=crop&w=800&q=80",
			Description: "Premium mesh ergonomic chair with adjustable lumbar support and headrest.",
			Specs:       []string{"Mesh Back", "Adjustable Lumbar", "Reclining"},
			Thumbnails: []string{
				"https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?auto=format&fit=crop&w=200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=200&auto=format&fit=crop",
			},
		},
	}
}
