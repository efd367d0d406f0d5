// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/ember-ml/ember/internal/nn"
)

// Module is the base interface for network components.
type Module = nn.Module

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// followed by ReLU.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs. Weights are initialized from
// U(-1, 1), the bias to zero.
func NewNeuron(nin int, activation bool) *Neuron {
	return nn.NewNeuron(nin, activation)
}

// Layer is an ordered collection of neurons sharing one input vector.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons, each with nin inputs.
func NewLayer(nin, nout int, activation bool) *Layer {
	return nn.NewLayer(nin, nout, activation)
}

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}
