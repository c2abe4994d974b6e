/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package plan

// Default is the UIKit to SwiftUI migration of the Vonage voice sample.
func Default() *Plan {
	return &Plan{
		Project: DefaultProject,
		Remove: []string{
			// file references
			"D1215926299980E2001BB563", // CallController.swift
			"D1215929299982A4001BB563", // CallController+VGVoiceDelegate.swift
			"D1521C49299DA37B00E7D572", // CallController+CXProviderDelegate.swift
			"D121593229998536001BB563", // Call.swift
			"D121593829998FE6001BB563", // User.swift
			"D121593C2999A2A6001BB563", // Connection.swift
			"D1F243892981902900C49B3F", // UserController.swift
			"D1521C43299C395F00E7D572", // CircularButton.swift
			"D1521C45299C396800E7D572", // DialerView.swift
			"D1521C47299C410A00E7D572", // CircularRingView.swift
			"D118E6DF29E9EA9C0039EABA", // CallVisualView.swift
			"D1F2438E2987370B00C49B3F", // ActveCallViewController.swift
			"D1F24387298187C600C49B3F", // LoginViewController.swift
			"D1F243762981846C00C49B3F", // DialerViewController.swift
			"FEB9E7752A4CA815003C2B62", // BaseViewController.swift
			// build files
			"D1215927299980E2001BB563",
			"D121592A299982A4001BB563",
			"D1521C4A299DA37B00E7D572",
			"D121593329998536001BB563",
			"D121593929998FE6001BB563",
			"D121593D2999A2A6001BB563",
			"D1F2438A2981902900C49B3F",
			"D1521C44299C395F00E7D572",
			"D1521C46299C396800E7D572",
			"D1521C48299C410A00E7D572",
			"D118E6E029E9EA9C0039EABA",
			"D1F2438F2987370B00C49B3F",
			"D1F24388298187C600C49B3F",
			"D1F243772981846C00C49B3F",
			"FEB9E7762A4CA815003C2B62",
			"D1F2437F2981846E00C49B3F", // LaunchScreen.storyboard in Resources
			"D1F2437D2981846E00E7D572", // LaunchScreen.storyboard variant group
		},
		BuildSettings: []Setting{
			{Key: "IPHONEOS_DEPLOYMENT_TARGET", Value: "16.0"},
		},
		Add: AddPlan{
			RootGroup:    Record{ID: "D1F243702981846C00C49B3F", Name: "VonageSDKClientVOIPExample"},
			SourcesPhase: Record{ID: "D1F243712981846C00C49B3F", Name: "Sources"},
			Groups: []Group{
				{Name: "Core", Path: "Core"},
				{Name: "Theme", Path: "Theme"},
				{Name: "Views", Path: "Views"},
			},
			Files: []File{
				{Path: "VonageSDKClientVOIPExample/VonageVoiceApp.swift", Name: "VonageVoiceApp.swift"},
				{Path: "VonageSDKClientVOIPExample/Core/CoreContext.swift", Name: "CoreContext.swift", Group: "Core"},
				{Path: "VonageSDKClientVOIPExample/Core/VoiceClientManager.swift", Name: "VoiceClientManager.swift", Group: "Core"},
				{Path: "VonageSDKClientVOIPExample/Theme/AppTheme.swift", Name: "AppTheme.swift", Group: "Theme"},
				{Path: "VonageSDKClientVOIPExample/Views/LoginView.swift", Name: "LoginView.swift", Group: "Views"},
				{Path: "VonageSDKClientVOIPExample/Views/MainView.swift", Name: "MainView.swift", Group: "Views"},
				{Path: "VonageSDKClientVOIPExample/Views/CallView.swift", Name: "CallView.swift", Group: "Views"},
				{Path: "VonageSDKClientVOIPExample/Views/DialerView.swift", Name: "DialerView.swift", Group: "Views"},
			},
		},
		NextStep: NextStep{
			Workspace: "VonageSDKClientVOIPExample.xcworkspace",
			Scheme:    "VonageSDKClientVOIPExample",
		},
	}
}
